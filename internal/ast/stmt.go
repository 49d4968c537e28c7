package ast

type Stmt interface {
	Node
	isStmt()
}

func (*File) isStmt() {}

func (*Block) isStmt() {}

func (*If) isStmt() {}

func (*While) isStmt() {}

func (*FuncDef) isStmt() {}

func (*Proto) isStmt() {}

func (*Continue) isStmt() {}

func (*Assign) isStmt() {}

func (*Decl) isStmt() {}

func (*ExprStmt) isStmt() {}

func (*StructDef) isStmt() {}

func (*EnumDef) isStmt() {}

func (*CondEntry) isStmt() {}

func (*CondExit) isStmt() {}

func (*LoopExit) isStmt() {}

func (*FuncExit) isStmt() {}
