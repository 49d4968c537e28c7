package ast

// Visitor is applied to every statement-bearing node in preorder.
// Returning false stops the descent below the visited node.
type Visitor func(Node) bool

// Walk performs a preorder DFS over the statement structure: files,
// blocks, both conditional branches, loop and function bodies.
// Expressions are not visited; use RenameIdents for identifier rewrites.
func Walk(n Node, v Visitor) {
	if n == nil {
		return
	}
	if !v(n) {
		return
	}
	switch node := n.(type) {
	case *File:
		for _, item := range node.Items {
			Walk(item, v)
		}
	case *Block:
		for _, item := range node.Items {
			Walk(item, v)
		}
	case *If:
		if node.Then != nil {
			Walk(node.Then, v)
		}
		if node.Else != nil {
			Walk(node.Else, v)
		}
	case *While:
		if node.Body != nil {
			Walk(node.Body, v)
		}
	case *FuncDef:
		if node.Body != nil {
			Walk(node.Body, v)
		}
	}
}

// RenameIdents rewrites, in place, every identifier occurrence under n
// whose name is in names, by applying rename to it. It reaches into
// expressions as well as statements, but leaves declaration names alone;
// declarations are handled separately by the declaration phase.
func RenameIdents(n Node, names map[string]bool, rename func(string) string) {
	switch node := n.(type) {
	case *File:
		for _, item := range node.Items {
			RenameIdents(item, names, rename)
		}
	case *Block:
		for _, item := range node.Items {
			RenameIdents(item, names, rename)
		}
	case *If:
		RenameIdents(node.Cond, names, rename)
		if node.Then != nil {
			RenameIdents(node.Then, names, rename)
		}
		if node.Else != nil {
			RenameIdents(node.Else, names, rename)
		}
	case *While:
		RenameIdents(node.Cond, names, rename)
		if node.Body != nil {
			RenameIdents(node.Body, names, rename)
		}
	case *FuncDef:
		if node.Body != nil {
			RenameIdents(node.Body, names, rename)
		}
	case *Assign:
		RenameIdents(node.Target, names, rename)
		RenameIdents(node.Value, names, rename)
	case *Decl:
		if node.Init != nil {
			RenameIdents(node.Init, names, rename)
		}
	case *ExprStmt:
		RenameIdents(node.X, names, rename)
	case *Ident:
		if names[node.Name] {
			node.Name = rename(node.Name)
		}
	case *BinaryExpr:
		RenameIdents(node.Left, names, rename)
		RenameIdents(node.Right, names, rename)
	case *UnaryExpr:
		RenameIdents(node.X, names, rename)
	case *PostfixExpr:
		RenameIdents(node.X, names, rename)
	case *CallExpr:
		for _, a := range node.Args {
			RenameIdents(a, names, rename)
		}
	case *FieldAccess:
		RenameIdents(node.X, names, rename)
	case *ParenExpr:
		RenameIdents(node.X, names, rename)
	}
}
