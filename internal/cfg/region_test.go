package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rondo/internal/ast"
)

func chainGraph(nodes ...ast.Stmt) *Graph {
	g := New()
	for i, n := range nodes {
		g.AddNode(n)
		if i > 0 {
			g.AddEdge(nodes[i-1], n)
		}
	}
	return g
}

func TestSubgraphBetweenStopsAtEnd(t *testing.T) {
	a, b, c, d := assign("a", "0"), assign("b", "0"), assign("c", "0"), assign("d", "0")
	g := chainGraph(a, b, c, d)

	sub := SubgraphBetween(g, a, c)

	assert.True(t, sub.Has(a))
	assert.True(t, sub.Has(b))
	assert.True(t, sub.Has(c))
	assert.False(t, sub.Has(d), "the end vertex must not be expanded")
	assert.Equal(t, []ast.Stmt{b}, sub.Successors(a))
	assert.Equal(t, []ast.Stmt{c}, sub.Successors(b))
}

func TestSubgraphBetweenIncludesUnreachableEnd(t *testing.T) {
	a, b := assign("a", "0"), assign("b", "0")
	island := assign("x", "0")
	g := chainGraph(a, b)
	g.AddNode(island)

	sub := SubgraphBetween(g, a, island)

	assert.True(t, sub.Has(a))
	assert.True(t, sub.Has(b))
	assert.True(t, sub.Has(island), "the end vertex is added even when never reached")
}

// The search expands every non-end vertex it discovers, so side branches
// that never rejoin the end are still part of the result.
func TestSubgraphBetweenIsEnvelopeNotSlice(t *testing.T) {
	a, b, c, side, end := assign("a", "0"), assign("b", "0"), assign("c", "0"), assign("s", "0"), assign("e", "0")
	g := New()
	g.AddEdge(a, b)
	g.AddEdge(a, c)
	g.AddEdge(b, end)
	g.AddEdge(c, side)

	sub := SubgraphBetween(g, a, end)

	assert.True(t, sub.Has(side))
	assert.Equal(t, 5, sub.Len())
}

func TestInsertGraphSplicesFreshCopy(t *testing.T) {
	place, after := assign("p", "0"), assign("q", "0")
	g := chainGraph(place, after)

	x, y := assign("round", "3"), assign("round", "4")
	sub := chainGraph(x, y)

	InsertGraph(g, place, sub)

	require.Equal(t, 4, g.Len())
	assert.False(t, g.Has(x), "inserted vertices must be fresh copies")
	assert.False(t, g.Has(y))

	succ := g.Successors(place)
	require.Len(t, succ, 1)
	first := succ[0]
	assert.NotSame(t, x, first)
	assert.Equal(t, x.String(), first.String())

	next := g.Successors(first)
	require.Len(t, next, 1)
	assert.Equal(t, y.String(), next[0].String())

	// The copy's last vertex stays dangling and the old successor is cut
	// off; the inserted region is a terminal branch.
	assert.Empty(t, g.Successors(next[0]))
	assert.Empty(t, g.Predecessors(after))
}

func TestInsertGraphEmptySubgraphIsNoOp(t *testing.T) {
	place, after := assign("p", "0"), assign("q", "0")
	g := chainGraph(place, after)

	InsertGraph(g, place, New())

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []ast.Stmt{after}, g.Successors(place))
}

func TestInsertGraphCopiesAreIndependent(t *testing.T) {
	place := assign("p", "0")
	g := chainGraph(place)

	x := assign("round", "3")
	sub := chainGraph(x)

	InsertGraph(g, place, sub)

	clone := g.Successors(place)[0].(*ast.Assign)
	clone.Target.(*ast.Ident).Name = "round_0"
	assert.Equal(t, "round = 3;", x.String())
}
