package ast

// Deep copies. Every clone is a fresh identity denoting the same logical
// statement; the unfolding engine copies the same loop-body template into
// many splice points and tells the copies apart by pointer.

func CloneStmt(s Stmt) Stmt {
	if s == nil {
		return nil
	}
	switch n := s.(type) {
	case *File:
		return &File{Pos: n.Pos, Items: CloneStmts(n.Items)}
	case *Block:
		return CloneBlock(n)
	case *If:
		return &If{Pos: n.Pos, Cond: CloneExpr(n.Cond), Then: CloneBlock(n.Then), Else: CloneBlock(n.Else)}
	case *While:
		return &While{Pos: n.Pos, Cond: CloneExpr(n.Cond), Body: CloneBlock(n.Body)}
	case *FuncDef:
		return &FuncDef{Pos: n.Pos, Return: CloneTypeSpec(n.Return), Name: n.Name, Params: cloneParams(n.Params), Body: CloneBlock(n.Body)}
	case *Proto:
		return &Proto{Pos: n.Pos, Return: CloneTypeSpec(n.Return), Name: n.Name, Params: cloneParams(n.Params)}
	case *Continue:
		return &Continue{Pos: n.Pos}
	case *Assign:
		return &Assign{Pos: n.Pos, Target: CloneExpr(n.Target), Op: n.Op, Value: CloneExpr(n.Value)}
	case *Decl:
		return &Decl{Pos: n.Pos, Type: CloneTypeSpec(n.Type), Name: n.Name, Init: CloneExpr(n.Init)}
	case *ExprStmt:
		return &ExprStmt{Pos: n.Pos, X: CloneExpr(n.X)}
	case *StructDef:
		fields := make([]*Decl, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = CloneStmt(f).(*Decl)
		}
		return &StructDef{Pos: n.Pos, Tag: n.Tag, Fields: fields}
	case *EnumDef:
		consts := make([]string, len(n.Consts))
		copy(consts, n.Consts)
		return &EnumDef{Pos: n.Pos, Tag: n.Tag, Consts: consts}
	case *CondEntry:
		return &CondEntry{Pos: n.Pos}
	case *CondExit:
		return &CondExit{Pos: n.Pos}
	case *LoopExit:
		return &LoopExit{Pos: n.Pos}
	case *FuncExit:
		return &FuncExit{Pos: n.Pos}
	default:
		return s
	}
}

func CloneStmts(items []Stmt) []Stmt {
	if items == nil {
		return nil
	}
	out := make([]Stmt, len(items))
	for i, s := range items {
		out[i] = CloneStmt(s)
	}
	return out
}

func CloneBlock(b *Block) *Block {
	if b == nil {
		return nil
	}
	return &Block{Pos: b.Pos, Items: CloneStmts(b.Items)}
}

func CloneExpr(e Expr) Expr {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *Ident:
		return &Ident{Pos: n.Pos, Name: n.Name}
	case *IntLit:
		return &IntLit{Pos: n.Pos, Value: n.Value}
	case *BinaryExpr:
		return &BinaryExpr{Pos: n.Pos, Op: n.Op, Left: CloneExpr(n.Left), Right: CloneExpr(n.Right)}
	case *UnaryExpr:
		return &UnaryExpr{Pos: n.Pos, Op: n.Op, X: CloneExpr(n.X)}
	case *PostfixExpr:
		return &PostfixExpr{Pos: n.Pos, Op: n.Op, X: CloneExpr(n.X)}
	case *CallExpr:
		args := make([]Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = CloneExpr(a)
		}
		return &CallExpr{Pos: n.Pos, Func: n.Func, Args: args}
	case *FieldAccess:
		return &FieldAccess{Pos: n.Pos, X: CloneExpr(n.X), Arrow: n.Arrow, Field: n.Field}
	case *ParenExpr:
		return &ParenExpr{Pos: n.Pos, X: CloneExpr(n.X)}
	default:
		return e
	}
}

func CloneTypeSpec(t TypeSpec) TypeSpec {
	if t == nil {
		return nil
	}
	switch n := t.(type) {
	case *NamedType:
		return &NamedType{Pos: n.Pos, Name: n.Name}
	case *EnumType:
		return &EnumType{Pos: n.Pos, Tag: n.Tag}
	case *StructType:
		return &StructType{Pos: n.Pos, Tag: n.Tag}
	case *PtrType:
		return &PtrType{Pos: n.Pos, Elem: CloneTypeSpec(n.Elem)}
	default:
		return t
	}
}

func cloneParams(params []*Param) []*Param {
	if params == nil {
		return nil
	}
	out := make([]*Param, len(params))
	for i, p := range params {
		out[i] = &Param{Pos: p.Pos, Type: CloneTypeSpec(p.Type), Name: p.Name}
	}
	return out
}
