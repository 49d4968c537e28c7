// Package cfg derives a control-flow graph from the AST and offers the
// region, slicing and reconstruction utilities the downstream passes
// consume. Vertices are AST node identities (pointers), including
// synthetic marker nodes; edges denote possible single-step execution
// order. The graph is read-only for those passes: they never mutate
// structure built here.
package cfg

import (
	"fmt"
	"strings"

	"rondo/internal/ast"
)

// Graph is a directed graph over statement identities. Iteration and
// topological sorting respect insertion order, which callers rely on for
// deterministic reconstruction.
type Graph struct {
	nodes []ast.Stmt
	index map[ast.Stmt]int
	succ  map[ast.Stmt][]ast.Stmt
	pred  map[ast.Stmt][]ast.Stmt
}

func New() *Graph {
	return &Graph{
		index: make(map[ast.Stmt]int),
		succ:  make(map[ast.Stmt][]ast.Stmt),
		pred:  make(map[ast.Stmt][]ast.Stmt),
	}
}

// FromAST builds the CFG of root in a fresh graph and returns it together
// with the root region.
func FromAST(root ast.Stmt) (*Graph, Region) {
	g := New()
	r := Build(g, root)
	return g, r
}

func (g *Graph) Len() int {
	return len(g.nodes)
}

func (g *Graph) Has(n ast.Stmt) bool {
	_, ok := g.index[n]
	return ok
}

// AddNode registers n as a vertex. Adding twice is a no-op.
func (g *Graph) AddNode(n ast.Stmt) {
	if g.Has(n) {
		return
	}
	g.index[n] = len(g.nodes)
	g.nodes = append(g.nodes, n)
}

// AddEdge adds the edge from→to, registering both endpoints. Duplicate
// edges collapse.
func (g *Graph) AddEdge(from, to ast.Stmt) {
	g.AddNode(from)
	g.AddNode(to)
	for _, s := range g.succ[from] {
		if s == to {
			return
		}
	}
	g.succ[from] = append(g.succ[from], to)
	g.pred[to] = append(g.pred[to], from)
}

func (g *Graph) RemoveEdge(from, to ast.Stmt) {
	g.succ[from] = removeStmt(g.succ[from], to)
	g.pred[to] = removeStmt(g.pred[to], from)
}

// Nodes returns the vertices in insertion order.
func (g *Graph) Nodes() []ast.Stmt {
	out := make([]ast.Stmt, len(g.nodes))
	copy(out, g.nodes)
	return out
}

func (g *Graph) Successors(n ast.Stmt) []ast.Stmt {
	out := make([]ast.Stmt, len(g.succ[n]))
	copy(out, g.succ[n])
	return out
}

func (g *Graph) Predecessors(n ast.Stmt) []ast.Stmt {
	out := make([]ast.Stmt, len(g.pred[n]))
	copy(out, g.pred[n])
	return out
}

// TopoSort returns the vertices in a topological order that is stable
// with respect to insertion order: among ready vertices the earliest
// inserted comes first. Vertices on cycles are appended in insertion
// order after the acyclic prefix rather than dropped.
func (g *Graph) TopoSort() []ast.Stmt {
	indeg := make(map[ast.Stmt]int, len(g.nodes))
	for _, n := range g.nodes {
		indeg[n] = len(g.pred[n])
	}

	order := make([]ast.Stmt, 0, len(g.nodes))
	done := make(map[ast.Stmt]bool, len(g.nodes))
	for len(order) < len(g.nodes) {
		picked := false
		for _, n := range g.nodes {
			if !done[n] && indeg[n] == 0 {
				done[n] = true
				order = append(order, n)
				for _, s := range g.succ[n] {
					indeg[s]--
				}
				picked = true
				break
			}
		}
		if !picked {
			// Remaining vertices all sit on cycles.
			for _, n := range g.nodes {
				if !done[n] {
					done[n] = true
					order = append(order, n)
				}
			}
		}
	}
	return order
}

// Subgraph returns the subgraph induced on keep, preserving the original
// insertion order of vertices and edges.
func (g *Graph) Subgraph(keep map[ast.Stmt]bool) *Graph {
	sub := New()
	for _, n := range g.nodes {
		if keep[n] {
			sub.AddNode(n)
		}
	}
	for _, n := range g.nodes {
		if !keep[n] {
			continue
		}
		for _, s := range g.succ[n] {
			if keep[s] {
				sub.AddEdge(n, s)
			}
		}
	}
	return sub
}

// Dump renders every vertex with its successors, for debugging.
func (g *Graph) Dump() string {
	var b strings.Builder
	for _, n := range g.nodes {
		b.WriteString("############\n")
		b.WriteString(fmt.Sprintf("%s %s %p\n", n.NodeType(), n.NodePos(), n))
		b.WriteString("successors\n")
		for _, s := range g.succ[n] {
			b.WriteString(fmt.Sprintf("%s %s %p\n", s.NodeType(), s.NodePos(), s))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func removeStmt(list []ast.Stmt, n ast.Stmt) []ast.Stmt {
	for i, s := range list {
		if s == n {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
