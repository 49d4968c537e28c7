package grammar

import "github.com/alecthomas/participle/v2/lexer"

type Program struct {
	Items []*ExternalItem `parser:"@@*"`
}

type ExternalItem struct {
	StructDef *StructDef `parser:"  @@"`
	EnumDef   *EnumDef   `parser:"| @@"`
	Decl      *TopDecl   `parser:"| @@"`
}

type StructDef struct {
	Pos    lexer.Position
	Tag    string       `parser:"'struct' @Ident '{'"`
	Fields []*FieldDecl `parser:"@@* '}' ';'"`
}

type FieldDecl struct {
	Pos  lexer.Position
	Type *TypeRef `parser:"@@"`
	Name string   `parser:"@Ident ';'"`
}

type EnumDef struct {
	Pos    lexer.Position
	Tag    string   `parser:"'enum' @Ident '{'"`
	Consts []string `parser:"@Ident { ',' @Ident } '}' ';'"`
}

// TopDecl covers the three Ident-led external forms: a function
// definition, a prototype and a plain variable declaration.
type TopDecl struct {
	Pos  lexer.Position
	Type *TypeRef  `parser:"@@"`
	Name string    `parser:"@Ident"`
	Func *FuncTail `parser:"( @@"`
	Init *Expr     `parser:"| [ '=' @@ ] ';' )"`
}

// FuncTail is the parameter list plus either a body (definition) or a
// semicolon (prototype).
type FuncTail struct {
	Params []*ParamDecl `parser:"'(' [ @@ { ',' @@ } ] ')'"`
	Body   *BlockStmt   `parser:"( @@ | ';' )"`
}

type ParamDecl struct {
	Pos  lexer.Position
	Type *TypeRef `parser:"@@"`
	Name string   `parser:"[ @Ident ]"`
}

type TypeRef struct {
	Pos    lexer.Position
	Enum   *string  `parser:"( 'enum' @Ident"`
	Struct *string  `parser:"| 'struct' @Ident"`
	Name   *string  `parser:"| @Ident )"`
	Stars  []string `parser:"{ @'*' }"`
}

type BlockStmt struct {
	Pos   lexer.Position
	Items []*Stmt `parser:"'{' @@* '}'"`
}

type Stmt struct {
	While    *WhileStmt    `parser:"  @@"`
	If       *IfStmt       `parser:"| @@"`
	Continue *ContinueStmt `parser:"| @@"`
	Block    *BlockStmt    `parser:"| @@"`
	Decl     *DeclStmt     `parser:"| @@"`
	Simple   *SimpleStmt   `parser:"| @@"`
}

type WhileStmt struct {
	Pos  lexer.Position
	Cond *Expr      `parser:"'while' '(' @@ ')'"`
	Body *BlockStmt `parser:"@@"`
}

type IfStmt struct {
	Pos  lexer.Position
	Cond *Expr      `parser:"'if' '(' @@ ')'"`
	Then *BlockStmt `parser:"@@"`
	Else *ElseTail  `parser:"[ @@ ]"`
}

type ElseTail struct {
	If    *IfStmt    `parser:"'else' ( @@"`
	Block *BlockStmt `parser:"| @@ )"`
}

type ContinueStmt struct {
	Pos  lexer.Position
	Stmt bool `parser:"@'continue' ';'"`
}

type DeclStmt struct {
	Pos  lexer.Position
	Type *TypeRef `parser:"@@"`
	Name string   `parser:"@Ident"`
	Init *Expr    `parser:"[ '=' @@ ] ';'"`
}

// SimpleStmt is an expression statement, optionally continued into an
// assignment. Folding the two avoids re-parsing a long call expression
// when the assignment operator never shows up.
type SimpleStmt struct {
	Pos    lexer.Position
	Expr   *PostfixExpr `parser:"@@"`
	Assign *AssignTail  `parser:"[ @@ ] ';'"`
}

type AssignTail struct {
	Op    string `parser:"@('=' | '+=' | '-=' | '*=' | '/=' | '%=')"`
	Value *Expr  `parser:"@@"`
}

type Expr struct {
	Pos    lexer.Position
	Binary *BinaryExpr `parser:"@@"`
}

type BinaryExpr struct {
	Left *UnaryExpr `parser:"@@"`
	Ops  []*BinOp   `parser:"{ @@ }"`
}

type BinOp struct {
	Operator string     `parser:"@('||' | '&&' | '==' | '!=' | '<=' | '>=' | '<' | '>' | '+' | '-' | '*' | '/' | '%')"`
	Right    *UnaryExpr `parser:"@@"`
}

type UnaryExpr struct {
	Operator *string      `parser:"[ @('!' | '-' | '*' | '&') ]"`
	Value    *PostfixExpr `parser:"@@"`
}

type PostfixExpr struct {
	Pos     lexer.Position
	Primary *PrimaryExpr `parser:"@@"`
	Suffix  []*PostfixOp `parser:"{ @@ }"`
}

type PostfixOp struct {
	Pos   lexer.Position
	Arrow *string     `parser:"( '->' @Ident"`
	Dot   *string     `parser:"| '.' @Ident"`
	Call  *CallSuffix `parser:"| @@"`
	Inc   bool        `parser:"| @'++'"`
	Dec   bool        `parser:"| @'--' )"`
}

type CallSuffix struct {
	Args []*Expr `parser:"'(' [ @@ { ',' @@ } ] ')'"`
}

type PrimaryExpr struct {
	Pos    lexer.Position
	Number *string `parser:"  @Integer"`
	Ident  *string `parser:"| @Ident"`
	Parens *Expr   `parser:"| '(' @@ ')'"`
}
