package unfold

import (
	"rondo/internal/ast"
)

// The declaration phase. For every sync variable declaration found, k+1
// structural copies with generation-suffixed names are inserted
// immediately before the original, in ascending generation order. Only
// two declaration shapes are recognized: an enumerated-type declaration
// and a pointer-to-named-type declaration. Anything else is silently
// left untouched; that degradation is documented behavior, not an error.

type declSite struct {
	items *[]ast.Stmt
	index int
	decl  *ast.Decl
}

func declareGenerations(root ast.Node, names []string, k int) {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	// Sites are collected first and applied afterwards: inserting into a
	// statement list while a traversal is iterating it would invalidate
	// the iteration.
	sites := collectDeclSites(root, wanted)

	// Applying in reverse keeps earlier indices valid within the same
	// list.
	for i := len(sites) - 1; i >= 0; i-- {
		applySite(sites[i], k)
	}
}

func collectDeclSites(n ast.Node, wanted map[string]bool) []declSite {
	var sites []declSite
	var visit func(ast.Node)

	scanItems := func(items *[]ast.Stmt) {
		for i, s := range *items {
			if d, ok := s.(*ast.Decl); ok && wanted[d.Name] && recognizedShape(d) {
				sites = append(sites, declSite{items: items, index: i, decl: d})
			}
			visit(s)
		}
	}

	visit = func(n ast.Node) {
		switch node := n.(type) {
		case *ast.File:
			scanItems(&node.Items)
		case *ast.Block:
			scanItems(&node.Items)
		case *ast.If:
			if node.Then != nil {
				visit(node.Then)
			}
			if node.Else != nil {
				visit(node.Else)
			}
		case *ast.While:
			if node.Body != nil {
				visit(node.Body)
			}
		case *ast.FuncDef:
			if node.Body != nil {
				visit(node.Body)
			}
		}
	}

	visit(n)
	return sites
}

func recognizedShape(d *ast.Decl) bool {
	switch t := d.Type.(type) {
	case *ast.EnumType:
		return true
	case *ast.PtrType:
		switch t.Elem.(type) {
		case *ast.NamedType, *ast.StructType:
			return true
		}
	}
	return false
}

func applySite(site declSite, k int) {
	generations := make([]ast.Stmt, 0, k+1)
	for i := 0; i <= k; i++ {
		clone := ast.CloneStmt(site.decl).(*ast.Decl)
		clone.Name = ast.GenName(site.decl.Name, i)
		generations = append(generations, clone)
	}

	items := *site.items
	out := make([]ast.Stmt, 0, len(items)+len(generations))
	out = append(out, items[:site.index]...)
	out = append(out, generations...)
	out = append(out, items[site.index:]...)
	*site.items = out
}
