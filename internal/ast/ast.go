// Package ast defines the C-subset syntax tree that every transform in
// rondo operates on. Node identity is pointer identity: two structurally
// equal nodes are distinct entities, and cloning a subtree always yields
// fresh identities. The unfolding engine and the CFG both rely on this.
package ast

import "fmt"

// Position is a source coordinate used for labeling and debugging only.
// It is never a key: synthetic nodes may share a position.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// File is the root of a translation unit.
type File struct {
	Pos   Position
	Items []Stmt
}

// Block is an ordered statement list ("{ ... }").
type Block struct {
	Pos   Position
	Items []Stmt
}

// If is a conditional. A nil Then and Else marks a CFG guard vertex that
// carries only the condition.
type If struct {
	Pos  Position
	Cond Expr
	Then *Block
	Else *Block
}

// While is the event loop construct. A nil Body marks a CFG guard vertex.
type While struct {
	Pos  Position
	Cond Expr
	Body *Block
}

// FuncDef is a function definition. A nil Body marks a CFG entry vertex
// that carries only the signature.
type FuncDef struct {
	Pos    Position
	Return TypeSpec
	Name   string
	Params []*Param
	Body   *Block
}

type Param struct {
	Pos  Position
	Type TypeSpec
	Name string
}

// Proto is a function prototype declaration.
type Proto struct {
	Pos    Position
	Return TypeSpec
	Name   string
	Params []*Param
}

type Continue struct {
	Pos Position
}

type Assign struct {
	Pos    Position
	Target Expr
	Op     string
	Value  Expr
}

// Decl is a variable declaration. The AST is the name registry: renaming
// a declaration means mutating Name in place.
type Decl struct {
	Pos  Position
	Type TypeSpec
	Name string
	Init Expr
}

type ExprStmt struct {
	Pos Position
	X   Expr
}

type StructDef struct {
	Pos    Position
	Tag    string
	Fields []*Decl
}

type EnumDef struct {
	Pos    Position
	Tag    string
	Consts []string
}

// Synthetic CFG markers. Content-free statements giving branching
// constructs a single merge point; they must never appear in
// reconstructed AST output.

type CondEntry struct {
	Pos Position
}

type CondExit struct {
	Pos Position
}

type LoopExit struct {
	Pos Position
}

type FuncExit struct {
	Pos Position
}

// Expressions. The transforms treat these atomically apart from
// identifier renaming.

type Ident struct {
	Pos  Position
	Name string
}

type IntLit struct {
	Pos   Position
	Value string
}

type BinaryExpr struct {
	Pos   Position
	Op    string
	Left  Expr
	Right Expr
}

type UnaryExpr struct {
	Pos Position
	Op  string
	X   Expr
}

// PostfixExpr is a postfix increment or decrement ("x++").
type PostfixExpr struct {
	Pos Position
	Op  string
	X   Expr
}

type CallExpr struct {
	Pos  Position
	Func string
	Args []Expr
}

// FieldAccess is "x->f" (Arrow) or "x.f".
type FieldAccess struct {
	Pos   Position
	X     Expr
	Arrow bool
	Field string
}

type ParenExpr struct {
	Pos Position
	X   Expr
}

// Type specifiers.

type NamedType struct {
	Pos  Position
	Name string
}

type EnumType struct {
	Pos Position
	Tag string
}

type StructType struct {
	Pos Position
	Tag string
}

type PtrType struct {
	Pos  Position
	Elem TypeSpec
}
