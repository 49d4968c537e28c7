package cfg

import "rondo/internal/ast"

// PathToAST rebuilds a statement tree from a linear (single-chain) graph,
// such as one path extracted with SubgraphBetween. Vertices are visited
// in topological order; a function, loop or conditional vertex opens a
// new nested block as that construct's body and subsequent vertices land
// inside it. Synthetic markers are skipped. Only one branch per construct
// can be represented: an else branch or sibling sequences never occur in
// a single path, which is the sole intended input.
func PathToAST(g *Graph) *ast.Block {
	current := &ast.Block{}
	root := current

	for _, n := range g.TopoSort() {
		switch v := n.(type) {
		case *ast.FuncDef:
			inner := &ast.Block{}
			current.Items = append(current.Items, &ast.FuncDef{
				Pos:    v.Pos,
				Return: v.Return,
				Name:   v.Name,
				Params: v.Params,
				Body:   inner,
			})
			current = inner

		case *ast.While:
			inner := &ast.Block{}
			current.Items = append(current.Items, &ast.While{Pos: v.Pos, Cond: v.Cond, Body: inner})
			current = inner

		case *ast.If:
			inner := &ast.Block{}
			current.Items = append(current.Items, &ast.If{Pos: v.Pos, Cond: v.Cond, Then: inner})
			current = inner

		case *ast.CondEntry, *ast.CondExit, *ast.LoopExit, *ast.FuncExit:
			// Markers delimit regions in the graph; they have no
			// statement form.

		default:
			current.Items = append(current.Items, n)
		}
	}

	return root
}

// IfPath filters path down to its conditional guard vertices, in
// topological order, and chains them into a new simple path graph: the
// sequence of predicates governing one concrete execution.
func IfPath(path *Graph) *Graph {
	var guards []ast.Stmt
	for _, n := range path.TopoSort() {
		if _, ok := n.(*ast.If); ok {
			guards = append(guards, n)
		}
	}

	out := New()
	for i, guard := range guards {
		out.AddNode(guard)
		if i > 0 {
			out.AddEdge(guards[i-1], guard)
		}
	}
	return out
}
