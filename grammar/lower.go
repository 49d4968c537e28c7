package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"

	"rondo/internal/ast"
)

// Lowering from the participle parse tree to the transform AST. The
// parse tree mirrors concrete syntax; the AST is what the CFG builder
// and the unfolding engine agree on.

func lowerProgram(p *Program) *ast.File {
	file := &ast.File{}
	for _, item := range p.Items {
		switch {
		case item.StructDef != nil:
			file.Items = append(file.Items, lowerStructDef(item.StructDef))
		case item.EnumDef != nil:
			file.Items = append(file.Items, lowerEnumDef(item.EnumDef))
		case item.Decl != nil:
			file.Items = append(file.Items, lowerTopDecl(item.Decl))
		}
	}
	if len(p.Items) > 0 {
		file.Pos = file.Items[0].NodePos()
	}
	return file
}

func lowerStructDef(s *StructDef) *ast.StructDef {
	def := &ast.StructDef{Pos: lowerPos(s.Pos), Tag: s.Tag}
	for _, f := range s.Fields {
		def.Fields = append(def.Fields, &ast.Decl{
			Pos:  lowerPos(f.Pos),
			Type: lowerTypeRef(f.Type),
			Name: f.Name,
		})
	}
	return def
}

func lowerEnumDef(e *EnumDef) *ast.EnumDef {
	consts := make([]string, len(e.Consts))
	copy(consts, e.Consts)
	return &ast.EnumDef{Pos: lowerPos(e.Pos), Tag: e.Tag, Consts: consts}
}

func lowerTopDecl(d *TopDecl) ast.Stmt {
	if d.Func == nil {
		decl := &ast.Decl{Pos: lowerPos(d.Pos), Type: lowerTypeRef(d.Type), Name: d.Name}
		if d.Init != nil {
			decl.Init = lowerExpr(d.Init)
		}
		return decl
	}

	params := make([]*ast.Param, len(d.Func.Params))
	for i, p := range d.Func.Params {
		params[i] = &ast.Param{Pos: lowerPos(p.Pos), Type: lowerTypeRef(p.Type), Name: p.Name}
	}

	if d.Func.Body == nil {
		return &ast.Proto{
			Pos:    lowerPos(d.Pos),
			Return: lowerTypeRef(d.Type),
			Name:   d.Name,
			Params: params,
		}
	}
	return &ast.FuncDef{
		Pos:    lowerPos(d.Pos),
		Return: lowerTypeRef(d.Type),
		Name:   d.Name,
		Params: params,
		Body:   lowerBlock(d.Func.Body),
	}
}

func lowerBlock(b *BlockStmt) *ast.Block {
	block := &ast.Block{Pos: lowerPos(b.Pos)}
	for _, s := range b.Items {
		block.Items = append(block.Items, lowerStmt(s))
	}
	return block
}

func lowerStmt(s *Stmt) ast.Stmt {
	switch {
	case s.While != nil:
		return &ast.While{
			Pos:  lowerPos(s.While.Pos),
			Cond: lowerExpr(s.While.Cond),
			Body: lowerBlock(s.While.Body),
		}
	case s.If != nil:
		return lowerIf(s.If)
	case s.Continue != nil:
		return &ast.Continue{Pos: lowerPos(s.Continue.Pos)}
	case s.Block != nil:
		return lowerBlock(s.Block)
	case s.Decl != nil:
		decl := &ast.Decl{
			Pos:  lowerPos(s.Decl.Pos),
			Type: lowerTypeRef(s.Decl.Type),
			Name: s.Decl.Name,
		}
		if s.Decl.Init != nil {
			decl.Init = lowerExpr(s.Decl.Init)
		}
		return decl
	case s.Simple != nil:
		return lowerSimple(s.Simple)
	default:
		return &ast.Block{}
	}
}

func lowerIf(i *IfStmt) *ast.If {
	out := &ast.If{
		Pos:  lowerPos(i.Pos),
		Cond: lowerExpr(i.Cond),
		Then: lowerBlock(i.Then),
	}
	if i.Else != nil {
		if i.Else.If != nil {
			out.Else = &ast.Block{
				Pos:   lowerPos(i.Else.If.Pos),
				Items: []ast.Stmt{lowerIf(i.Else.If)},
			}
		} else {
			out.Else = lowerBlock(i.Else.Block)
		}
	}
	return out
}

func lowerSimple(s *SimpleStmt) ast.Stmt {
	expr := lowerPostfix(s.Expr)
	if s.Assign == nil {
		return &ast.ExprStmt{Pos: lowerPos(s.Pos), X: expr}
	}
	return &ast.Assign{
		Pos:    lowerPos(s.Pos),
		Target: expr,
		Op:     s.Assign.Op,
		Value:  lowerExpr(s.Assign.Value),
	}
}

func lowerTypeRef(t *TypeRef) ast.TypeSpec {
	var base ast.TypeSpec
	pos := lowerPos(t.Pos)
	switch {
	case t.Enum != nil:
		base = &ast.EnumType{Pos: pos, Tag: *t.Enum}
	case t.Struct != nil:
		base = &ast.StructType{Pos: pos, Tag: *t.Struct}
	default:
		base = &ast.NamedType{Pos: pos, Name: *t.Name}
	}
	for range t.Stars {
		base = &ast.PtrType{Pos: pos, Elem: base}
	}
	return base
}

func lowerExpr(e *Expr) ast.Expr {
	return lowerBinary(e.Binary, lowerPos(e.Pos))
}

// lowerBinary folds the operator list left-associatively. Source
// conditions in this subset are fully parenthesized, so no precedence
// climbing is needed beyond that.
func lowerBinary(b *BinaryExpr, pos ast.Position) ast.Expr {
	left := lowerUnary(b.Left, pos)
	for _, op := range b.Ops {
		left = &ast.BinaryExpr{
			Pos:   pos,
			Op:    op.Operator,
			Left:  left,
			Right: lowerUnary(op.Right, pos),
		}
	}
	return left
}

func lowerUnary(u *UnaryExpr, pos ast.Position) ast.Expr {
	value := lowerPostfix(u.Value)
	if u.Operator != nil {
		return &ast.UnaryExpr{Pos: pos, Op: *u.Operator, X: value}
	}
	return value
}

func lowerPostfix(p *PostfixExpr) ast.Expr {
	base := lowerPrimary(p.Primary)
	pos := lowerPos(p.Pos)
	for _, op := range p.Suffix {
		switch {
		case op.Arrow != nil:
			base = &ast.FieldAccess{Pos: pos, X: base, Arrow: true, Field: *op.Arrow}
		case op.Dot != nil:
			base = &ast.FieldAccess{Pos: pos, X: base, Field: *op.Dot}
		case op.Call != nil:
			args := make([]ast.Expr, len(op.Call.Args))
			for i, a := range op.Call.Args {
				args[i] = lowerExpr(a)
			}
			name := ""
			if id, ok := base.(*ast.Ident); ok {
				name = id.Name
			} else {
				name = base.String()
			}
			base = &ast.CallExpr{Pos: pos, Func: name, Args: args}
		case op.Inc:
			base = &ast.PostfixExpr{Pos: pos, Op: "++", X: base}
		case op.Dec:
			base = &ast.PostfixExpr{Pos: pos, Op: "--", X: base}
		}
	}
	return base
}

func lowerPrimary(p *PrimaryExpr) ast.Expr {
	pos := lowerPos(p.Pos)
	switch {
	case p.Number != nil:
		return &ast.IntLit{Pos: pos, Value: *p.Number}
	case p.Ident != nil:
		return &ast.Ident{Pos: pos, Name: *p.Ident}
	default:
		return &ast.ParenExpr{Pos: pos, X: lowerExpr(p.Parens)}
	}
}

func lowerPos(p lexer.Position) ast.Position {
	return ast.Position{File: p.Filename, Line: p.Line, Column: p.Column}
}
