package ast

type Node interface {
	NodePos() Position
	NodeType() NodeType
	String() string
}

func (f *File) NodePos() Position  { return f.Pos }
func (*File) NodeType() NodeType   { return FILE }

func (b *Block) NodePos() Position { return b.Pos }
func (*Block) NodeType() NodeType  { return BLOCK }

func (i *If) NodePos() Position { return i.Pos }
func (*If) NodeType() NodeType  { return IF }

func (w *While) NodePos() Position { return w.Pos }
func (*While) NodeType() NodeType  { return WHILE }

func (f *FuncDef) NodePos() Position { return f.Pos }
func (*FuncDef) NodeType() NodeType  { return FUNC_DEF }

func (p *Proto) NodePos() Position { return p.Pos }
func (*Proto) NodeType() NodeType  { return PROTO }

func (c *Continue) NodePos() Position { return c.Pos }
func (*Continue) NodeType() NodeType  { return CONTINUE }

func (a *Assign) NodePos() Position { return a.Pos }
func (*Assign) NodeType() NodeType  { return ASSIGN }

func (d *Decl) NodePos() Position { return d.Pos }
func (*Decl) NodeType() NodeType  { return DECL }

func (e *ExprStmt) NodePos() Position { return e.Pos }
func (*ExprStmt) NodeType() NodeType  { return EXPR_STMT }

func (s *StructDef) NodePos() Position { return s.Pos }
func (*StructDef) NodeType() NodeType  { return STRUCT_DEF }

func (e *EnumDef) NodePos() Position { return e.Pos }
func (*EnumDef) NodeType() NodeType  { return ENUM_DEF }

func (c *CondEntry) NodePos() Position { return c.Pos }
func (*CondEntry) NodeType() NodeType  { return COND_ENTRY }

func (c *CondExit) NodePos() Position { return c.Pos }
func (*CondExit) NodeType() NodeType  { return COND_EXIT }

func (l *LoopExit) NodePos() Position { return l.Pos }
func (*LoopExit) NodeType() NodeType  { return LOOP_EXIT }

func (f *FuncExit) NodePos() Position { return f.Pos }
func (*FuncExit) NodeType() NodeType  { return FUNC_EXIT }

func (i *Ident) NodePos() Position { return i.Pos }
func (*Ident) NodeType() NodeType  { return IDENT }

func (l *IntLit) NodePos() Position { return l.Pos }
func (*IntLit) NodeType() NodeType  { return INT_LIT }

func (b *BinaryExpr) NodePos() Position { return b.Pos }
func (*BinaryExpr) NodeType() NodeType  { return BINARY_EXPR }

func (u *UnaryExpr) NodePos() Position { return u.Pos }
func (*UnaryExpr) NodeType() NodeType  { return UNARY_EXPR }

func (p *PostfixExpr) NodePos() Position { return p.Pos }
func (*PostfixExpr) NodeType() NodeType  { return POSTFIX_EXPR }

func (c *CallExpr) NodePos() Position { return c.Pos }
func (*CallExpr) NodeType() NodeType  { return CALL_EXPR }

func (f *FieldAccess) NodePos() Position { return f.Pos }
func (*FieldAccess) NodeType() NodeType  { return FIELD_ACCESS_EXPR }

func (p *ParenExpr) NodePos() Position { return p.Pos }
func (*ParenExpr) NodeType() NodeType  { return PAREN_EXPR }

func (n *NamedType) NodePos() Position { return n.Pos }
func (*NamedType) NodeType() NodeType  { return NAMED_TYPE }

func (e *EnumType) NodePos() Position { return e.Pos }
func (*EnumType) NodeType() NodeType  { return ENUM_TYPE }

func (s *StructType) NodePos() Position { return s.Pos }
func (*StructType) NodeType() NodeType  { return STRUCT_TYPE }

func (p *PtrType) NodePos() Position { return p.Pos }
func (*PtrType) NodeType() NodeType  { return PTR_TYPE }
