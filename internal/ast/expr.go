package ast

type Expr interface {
	Node
	isExpr()
}

func (*Ident) isExpr() {}

func (*IntLit) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*PostfixExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*FieldAccess) isExpr() {}

func (*ParenExpr) isExpr() {}

type TypeSpec interface {
	Node
	isTypeSpec()
}

func (*NamedType) isTypeSpec() {}

func (*EnumType) isTypeSpec() {}

func (*StructType) isTypeSpec() {}

func (*PtrType) isTypeSpec() {}
