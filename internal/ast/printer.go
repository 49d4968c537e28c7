package ast

import (
	"fmt"
	"strings"
)

// The String methods emit compilable C source. Synthetic markers print a
// bracketed label; they only ever show up in CFG dumps, never in code.

func (f *File) String() string {
	var b strings.Builder
	for i, item := range f.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(item.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, item := range b.Items {
		sb.WriteString("  " + strings.ReplaceAll(item.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (i *If) String() string {
	if i.Then == nil {
		// CFG guard vertex: condition only.
		return fmt.Sprintf("if (%s)", i.Cond.String())
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("if (%s)\n", i.Cond.String()))
	b.WriteString(i.Then.String())
	if i.Else != nil {
		b.WriteString("\nelse\n")
		b.WriteString(i.Else.String())
	}
	return b.String()
}

func (w *While) String() string {
	if w.Body == nil {
		return fmt.Sprintf("while (%s)", w.Cond.String())
	}
	return fmt.Sprintf("while (%s)\n%s", w.Cond.String(), w.Body.String())
}

func (f *FuncDef) String() string {
	sig := fmt.Sprintf("%s(%s)", typeAndName(f.Return, f.Name), paramList(f.Params))
	if f.Body == nil {
		return sig
	}
	return sig + "\n" + f.Body.String()
}

func (p *Proto) String() string {
	return fmt.Sprintf("%s(%s);", typeAndName(p.Return, p.Name), paramList(p.Params))
}

func (p *Param) String() string {
	return typeAndName(p.Type, p.Name)
}

func (*Continue) String() string {
	return "continue;"
}

func (a *Assign) String() string {
	return fmt.Sprintf("%s %s %s;", a.Target.String(), a.Op, a.Value.String())
}

func (d *Decl) String() string {
	if d.Init != nil {
		return fmt.Sprintf("%s = %s;", typeAndName(d.Type, d.Name), d.Init.String())
	}
	return typeAndName(d.Type, d.Name) + ";"
}

func (e *ExprStmt) String() string {
	return e.X.String() + ";"
}

func (s *StructDef) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("struct %s\n{\n", s.Tag))
	for _, f := range s.Fields {
		b.WriteString("  " + f.String() + "\n")
	}
	b.WriteString("};")
	return b.String()
}

func (e *EnumDef) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("enum %s\n{\n", e.Tag))
	for i, c := range e.Consts {
		b.WriteString("  " + c)
		if i < len(e.Consts)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("};")
	return b.String()
}

func (*CondEntry) String() string { return "<cond-entry>" }
func (*CondExit) String() string  { return "<cond-exit>" }
func (*LoopExit) String() string  { return "<loop-exit>" }
func (*FuncExit) String() string  { return "<func-exit>" }

func (i *Ident) String() string {
	return i.Name
}

func (l *IntLit) String() string {
	return l.Value
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Op, b.Right.String())
}

func (u *UnaryExpr) String() string {
	return u.Op + u.X.String()
}

func (p *PostfixExpr) String() string {
	return p.X.String() + p.Op
}

func (c *CallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Func, strings.Join(args, ", "))
}

func (f *FieldAccess) String() string {
	if f.Arrow {
		return f.X.String() + "->" + f.Field
	}
	return f.X.String() + "." + f.Field
}

func (p *ParenExpr) String() string {
	return "(" + p.X.String() + ")"
}

func (n *NamedType) String() string {
	return n.Name
}

func (e *EnumType) String() string {
	return "enum " + e.Tag
}

func (s *StructType) String() string {
	return "struct " + s.Tag
}

func (p *PtrType) String() string {
	return p.Elem.String() + " *"
}

// typeAndName renders a declarator the C way, with pointer stars bound to
// the name rather than the type.
func typeAndName(t TypeSpec, name string) string {
	if p, ok := t.(*PtrType); ok {
		return typeAndName(p.Elem, "*"+name)
	}
	if name == "" {
		return t.String()
	}
	return t.String() + " " + name
}

func paramList(params []*Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}
