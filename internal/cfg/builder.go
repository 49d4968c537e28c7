package cfg

import "rondo/internal/ast"

// Region is the single-entry/single-exit vertex pair produced by
// translating one AST subtree. Regions compose by edge-chaining.
type Region struct {
	First ast.Stmt
	Last  ast.Stmt
}

// Empty reports whether the region holds no vertices, as produced for an
// empty statement sequence.
func (r Region) Empty() bool {
	return r.First == nil
}

// Build recursively translates node into vertices and edges of g and
// returns the entry/exit pair of the translated region.
//
// A conditional translates to
//
//	           if(c)(build(then))
//	          /                   \
//	condEntry                      condExit
//	          \                   /
//	           -------------------
//
// with a second guard if(!c) branch when an else branch exists. The
// direct condEntry→condExit edge is added unconditionally, even when an
// else branch exists: there is always a path that skips both branches.
//
// A loop translates to
//
//	        build(body)
//	       /           \
//	while(c)            loopExit
//	       \           /
//	        -----------
//
// with no back-edge from the body to the guard: no CFG path represents a
// second iteration.
//
// Unrecognized statement kinds register as single leaf vertices.
func Build(g *Graph, node ast.Stmt) Region {
	switch n := node.(type) {
	case *ast.If:
		first := &ast.CondEntry{Pos: n.Pos}
		last := &ast.CondExit{Pos: n.Pos}
		g.AddNode(last)
		g.AddNode(first)

		guard := &ast.If{Pos: n.Pos, Cond: n.Cond}
		g.AddNode(guard)
		g.AddEdge(first, guard)
		chainBody(g, guard, last, Build(g, n.Then))

		if n.Else != nil {
			negGuard := &ast.If{Pos: n.Pos, Cond: &ast.UnaryExpr{Pos: n.Pos, Op: "!", X: n.Cond}}
			g.AddNode(negGuard)
			g.AddEdge(first, negGuard)
			chainBody(g, negGuard, last, Build(g, n.Else))
		}

		g.AddEdge(first, last)
		return Region{first, last}

	case *ast.While:
		body := Build(g, n.Body)

		guard := &ast.While{Pos: n.Pos, Cond: n.Cond}
		last := &ast.LoopExit{Pos: n.Pos}
		g.AddNode(guard)
		chainBody(g, guard, last, body)
		g.AddEdge(guard, last)
		return Region{guard, last}

	case *ast.Block:
		if n == nil {
			return Region{}
		}
		var region Region
		var prev ast.Stmt
		for _, item := range n.Items {
			r := Build(g, item)
			if r.Empty() {
				continue
			}
			if prev != nil {
				g.AddEdge(prev, r.First)
			}
			if region.First == nil {
				region.First = r.First
			}
			prev = r.Last
		}
		region.Last = prev
		return region

	case *ast.FuncDef:
		body := Build(g, n.Body)

		first := &ast.FuncDef{Pos: n.Pos, Return: n.Return, Name: n.Name, Params: n.Params}
		last := &ast.FuncExit{Pos: n.Pos}
		g.AddNode(first)
		chainBody(g, first, last, body)
		return Region{first, last}

	default:
		g.AddNode(node)
		return Region{node, node}
	}
}

// chainBody wires entry→body→exit, or entry→exit directly when the body
// region is empty.
func chainBody(g *Graph, entry, exit ast.Stmt, body Region) {
	if body.Empty() {
		g.AddEdge(entry, exit)
		return
	}
	g.AddEdge(entry, body.First)
	g.AddEdge(body.Last, exit)
}
