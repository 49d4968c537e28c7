package cfg

import "rondo/internal/ast"

// SubgraphBetween returns the induced subgraph on the vertices discovered
// by a forward frontier search seeded at start. A vertex is expanded to
// its successors unless it is end itself; end is added to the result
// unconditionally, even when the search never reaches it. The result is
// a reachability envelope, not a must-pass-through-end slice: callers
// must not assume every included vertex lies on a start→end path.
func SubgraphBetween(g *Graph, start, end ast.Stmt) *Graph {
	nodes := map[ast.Stmt]bool{start: true}
	frontier := map[ast.Stmt]bool{start: true}

	for len(frontier) > 0 {
		next := make(map[ast.Stmt]bool)
		for n := range frontier {
			if n == end {
				continue
			}
			for _, s := range g.succ[n] {
				if !nodes[s] {
					next[s] = true
				}
				nodes[s] = true
			}
		}
		frontier = next
	}

	nodes[end] = true
	return g.Subgraph(nodes)
}

// InsertGraph deep-copies sub, merges the copy into g, removes every
// existing outgoing edge of place and connects place to the copy's
// topological-first vertex. The copy's last vertex is deliberately left
// without successors: the inserted region becomes a terminal branch, not
// an inline replacement. The single caller never walks past it.
func InsertGraph(g *Graph, place ast.Stmt, sub *Graph) {
	if sub.Len() == 0 {
		return
	}

	// Fresh identities for every copied vertex, edges remapped onto them.
	clones := make(map[ast.Stmt]ast.Stmt, sub.Len())
	for _, n := range sub.nodes {
		clones[n] = ast.CloneStmt(n)
	}
	for _, n := range sub.nodes {
		g.AddNode(clones[n])
	}
	for _, n := range sub.nodes {
		for _, s := range sub.succ[n] {
			g.AddEdge(clones[n], clones[s])
		}
	}

	first := clones[sub.TopoSort()[0]]

	for _, s := range g.Successors(place) {
		g.RemoveEdge(place, s)
	}
	g.AddEdge(place, first)
}
