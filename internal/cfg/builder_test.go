package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rondo/internal/ast"
)

func assign(target, value string) *ast.Assign {
	return &ast.Assign{
		Target: &ast.Ident{Name: target},
		Op:     "=",
		Value:  &ast.IntLit{Value: value},
	}
}

// reachable reports whether to can be reached from from along edges of g.
func reachable(g *Graph, from, to ast.Stmt) bool {
	seen := map[ast.Stmt]bool{from: true}
	queue := []ast.Stmt{from}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == to {
			return true
		}
		for _, s := range g.Successors(n) {
			if !seen[s] {
				seen[s] = true
				queue = append(queue, s)
			}
		}
	}
	return false
}

func TestBuildLeaf(t *testing.T) {
	g := New()
	a := assign("x", "1")
	r := Build(g, a)

	assert.Same(t, a, r.First)
	assert.Same(t, a, r.Last)
	assert.Equal(t, 1, g.Len())
	assert.Empty(t, g.Successors(a))
}

func TestBuildSequence(t *testing.T) {
	g := New()
	a1, a2, a3 := assign("x", "1"), assign("x", "2"), assign("x", "3")
	r := Build(g, &ast.Block{Items: []ast.Stmt{a1, a2, a3}})

	assert.Same(t, a1, r.First)
	assert.Same(t, a3, r.Last)
	assert.Equal(t, []ast.Stmt{a2}, g.Successors(a1))
	assert.Equal(t, []ast.Stmt{a3}, g.Successors(a2))
	assert.Empty(t, g.Successors(a3))
}

func TestBuildEmptySequence(t *testing.T) {
	g := New()
	r := Build(g, &ast.Block{})

	assert.True(t, r.Empty())
	assert.Equal(t, 0, g.Len())
}

func TestBuildConditional(t *testing.T) {
	g := New()
	body := assign("round", "3")
	cond := &ast.BinaryExpr{Op: "==", Left: &ast.Ident{Name: "round"}, Right: &ast.IntLit{Value: "1"}}
	r := Build(g, &ast.If{Cond: cond, Then: &ast.Block{Items: []ast.Stmt{body}}})

	entry, ok := r.First.(*ast.CondEntry)
	require.True(t, ok)
	exit, ok := r.Last.(*ast.CondExit)
	require.True(t, ok)

	succ := g.Successors(entry)
	require.Len(t, succ, 2)

	guard, ok := succ[0].(*ast.If)
	require.True(t, ok)
	assert.Same(t, cond, guard.Cond)
	assert.Nil(t, guard.Then, "guard vertex carries the condition only")
	assert.Equal(t, []ast.Stmt{body}, g.Successors(guard))
	assert.Equal(t, []ast.Stmt{exit}, g.Successors(body))

	assert.Same(t, exit, succ[1], "entry must connect to exit directly")
}

// The direct entry→exit edge exists even when both branches are present:
// one CFG path always skips the conditional entirely.
func TestBuildConditionalWithElseKeepsSkipEdge(t *testing.T) {
	g := New()
	cond := &ast.Ident{Name: "x"}
	stmt := &ast.If{
		Cond: cond,
		Then: &ast.Block{Items: []ast.Stmt{assign("x", "1")}},
		Else: &ast.Block{Items: []ast.Stmt{assign("x", "2")}},
	}
	r := Build(g, stmt)

	succ := g.Successors(r.First)
	require.Len(t, succ, 3)

	guard := succ[0].(*ast.If)
	assert.Same(t, cond, guard.Cond)

	negGuard := succ[1].(*ast.If)
	neg, ok := negGuard.Cond.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, "!", neg.Op)
	assert.Same(t, cond, neg.X)

	assert.Same(t, r.Last, succ[2])
}

func TestBuildLoopHasNoBackEdge(t *testing.T) {
	g := New()
	body := assign("round", "3")
	cond := &ast.IntLit{Value: "1"}
	r := Build(g, &ast.While{Cond: cond, Body: &ast.Block{Items: []ast.Stmt{body}}})

	guard, ok := r.First.(*ast.While)
	require.True(t, ok)
	assert.Same(t, cond, guard.Cond)
	assert.Nil(t, guard.Body)

	exit, ok := r.Last.(*ast.LoopExit)
	require.True(t, ok)

	assert.Equal(t, []ast.Stmt{body, exit}, g.Successors(guard))
	assert.Equal(t, []ast.Stmt{exit}, g.Successors(body))
	assert.Empty(t, g.Successors(exit))
	assert.Empty(t, g.Predecessors(guard), "no path may represent a second iteration")
}

func TestBuildLoopWithEmptyBody(t *testing.T) {
	g := New()
	r := Build(g, &ast.While{Cond: &ast.IntLit{Value: "1"}, Body: &ast.Block{}})

	assert.Equal(t, []ast.Stmt{r.Last}, g.Successors(r.First))
}

func TestBuildFuncDef(t *testing.T) {
	g := New()
	body := assign("x", "1")
	fn := &ast.FuncDef{
		Return: &ast.NamedType{Name: "int"},
		Name:   "main",
		Body:   &ast.Block{Items: []ast.Stmt{body}},
	}
	r := Build(g, fn)

	entry, ok := r.First.(*ast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, "main", entry.Name)
	assert.Nil(t, entry.Body)
	assert.NotSame(t, fn, entry)

	_, ok = r.Last.(*ast.FuncExit)
	require.True(t, ok)
	assert.True(t, reachable(g, r.First, r.Last))
}

func TestBuildEventLoopReachability(t *testing.T) {
	recv := assign("mbox", "0")
	handler := &ast.If{
		Cond: &ast.BinaryExpr{Op: "==", Left: &ast.Ident{Name: "round"}, Right: &ast.IntLit{Value: "1"}},
		Then: &ast.Block{Items: []ast.Stmt{assign("round", "3"), &ast.Continue{}}},
	}
	fn := &ast.FuncDef{
		Return: &ast.NamedType{Name: "int"},
		Name:   "main",
		Body: &ast.Block{Items: []ast.Stmt{
			&ast.While{Cond: &ast.IntLit{Value: "1"}, Body: &ast.Block{Items: []ast.Stmt{recv, handler}}},
		}},
	}

	g, r := FromAST(fn)

	assert.True(t, reachable(g, r.First, r.Last))
	assert.True(t, reachable(g, r.First, recv))
	for _, n := range g.Nodes() {
		assert.True(t, reachable(g, r.First, n), "every vertex must be reachable from the entry")
	}
}

func TestTopoSortStable(t *testing.T) {
	g := New()
	a, b, c, d := assign("a", "0"), assign("b", "0"), assign("c", "0"), assign("d", "0")
	g.AddEdge(a, b)
	g.AddEdge(a, c)
	g.AddEdge(b, d)
	g.AddEdge(c, d)

	assert.Equal(t, []ast.Stmt{a, b, c, d}, g.TopoSort())
}

func TestAddEdgeCollapsesDuplicates(t *testing.T) {
	g := New()
	a, b := assign("a", "0"), assign("b", "0")
	g.AddEdge(a, b)
	g.AddEdge(a, b)

	assert.Len(t, g.Successors(a), 1)
	assert.Len(t, g.Predecessors(b), 1)
}
