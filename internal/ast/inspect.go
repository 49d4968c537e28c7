package ast

// Declaration inventories consumed by the downstream symbolic passes.
// They read the tree; nothing here mutates it.

// TypeName resolves the printable base type of a declaration, looking
// through pointers.
func TypeName(t TypeSpec) string {
	switch n := t.(type) {
	case *NamedType:
		return n.Name
	case *EnumType:
		return n.Tag
	case *StructType:
		return n.Tag
	case *PtrType:
		return TypeName(n.Elem)
	default:
		return "?"
	}
}

// DeclaredVars returns every variable declaration reachable from root as
// a name-to-type-name mapping.
func DeclaredVars(root Node) map[string]string {
	vars := make(map[string]string)
	Walk(root, func(n Node) bool {
		if d, ok := n.(*Decl); ok {
			vars[d.Name] = TypeName(d.Type)
		}
		return true
	})
	return vars
}

// EnumDeclarations returns enum definitions as {tag: [const1, ...]}.
func EnumDeclarations(root Node) map[string][]string {
	enums := make(map[string][]string)
	Walk(root, func(n Node) bool {
		if e, ok := n.(*EnumDef); ok {
			consts := make([]string, len(e.Consts))
			copy(consts, e.Consts)
			enums[e.Tag] = consts
		}
		return true
	})
	return enums
}

// StructVars returns variables of struct type (directly or through a
// pointer) as {name: struct tag}.
func StructVars(root Node) map[string]string {
	vars := make(map[string]string)
	Walk(root, func(n Node) bool {
		d, ok := n.(*Decl)
		if !ok {
			return true
		}
		t := d.Type
		if p, isPtr := t.(*PtrType); isPtr {
			t = p.Elem
		}
		if s, isStruct := t.(*StructType); isStruct {
			vars[d.Name] = s.Tag
		}
		return true
	})
	return vars
}

// FuncDecls returns the function prototypes reachable from root by name.
func FuncDecls(root Node) map[string]*Proto {
	protos := make(map[string]*Proto)
	Walk(root, func(n Node) bool {
		if p, ok := n.(*Proto); ok {
			protos[p.Name] = p
		}
		return true
	})
	return protos
}

// FindFuncDef returns the function definition named name, or nil.
func FindFuncDef(root Node, name string) *FuncDef {
	var found *FuncDef
	Walk(root, func(n Node) bool {
		if f, ok := n.(*FuncDef); ok && f.Name == name {
			found = f
			return false
		}
		return true
	})
	return found
}

// StructRefBase resolves the variable at the bottom of a chain of field
// accesses ("var->foo->bar" yields "var").
func StructRefBase(e Expr) string {
	switch n := e.(type) {
	case *FieldAccess:
		return StructRefBase(n.X)
	case *Ident:
		return n.Name
	default:
		return ""
	}
}
