package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rondo/internal/ast"
)

func TestPathToASTNestsConstructs(t *testing.T) {
	fn := &ast.FuncDef{Return: &ast.NamedType{Name: "int"}, Name: "main"}
	before := assign("round", "0")
	loop := &ast.While{Cond: &ast.IntLit{Value: "1"}}
	inside := assign("round", "3")
	g := chainGraph(fn, before, loop, inside)

	root := PathToAST(g)

	require.Len(t, root.Items, 1)
	outFn, ok := root.Items[0].(*ast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, "main", outFn.Name)
	assert.NotSame(t, fn, outFn)

	require.Len(t, outFn.Body.Items, 2)
	assert.Same(t, before, outFn.Body.Items[0])

	outLoop, ok := outFn.Body.Items[1].(*ast.While)
	require.True(t, ok)
	require.Len(t, outLoop.Body.Items, 1)
	assert.Same(t, inside, outLoop.Body.Items[0])
}

func TestPathToASTSkipsMarkers(t *testing.T) {
	guard := &ast.If{Cond: &ast.BinaryExpr{Op: "==", Left: &ast.Ident{Name: "round"}, Right: &ast.IntLit{Value: "1"}}}
	body := assign("round", "3")
	g := chainGraph(&ast.CondEntry{}, guard, body, &ast.CondExit{}, &ast.LoopExit{}, &ast.FuncExit{})

	root := PathToAST(g)

	require.Len(t, root.Items, 1)
	out, ok := root.Items[0].(*ast.If)
	require.True(t, ok)
	assert.Equal(t, "round == 1", out.Cond.String())
	require.Len(t, out.Then.Items, 1)
	assert.Same(t, body, out.Then.Items[0])
}

func TestPathToASTPrintsAsSource(t *testing.T) {
	guard := &ast.If{Cond: &ast.Ident{Name: "x"}}
	body := assign("x", "1")
	g := chainGraph(&ast.CondEntry{}, guard, body, &ast.CondExit{})

	assert.Equal(t, "{\n  if (x)\n  {\n    x = 1;\n  }\n}", PathToAST(g).String())
}

func TestIfPathChainsGuards(t *testing.T) {
	g1 := &ast.If{Cond: &ast.BinaryExpr{Op: "==", Left: &ast.Ident{Name: "round"}, Right: &ast.IntLit{Value: "1"}}}
	g2 := &ast.If{Cond: &ast.BinaryExpr{Op: "==", Left: &ast.Ident{Name: "round_0"}, Right: &ast.IntLit{Value: "2"}}}
	path := chainGraph(g1, assign("round", "3"), g2, assign("round_0", "4"), &ast.Continue{})

	out := IfPath(path)

	require.Equal(t, 2, out.Len())
	assert.Equal(t, []ast.Stmt{g1, g2}, out.TopoSort())
	assert.Equal(t, []ast.Stmt{g2}, out.Successors(g1))
	assert.Empty(t, out.Successors(g2))
}

func TestIfPathEmptyWhenNoGuards(t *testing.T) {
	path := chainGraph(assign("a", "0"), assign("b", "0"))
	assert.Equal(t, 0, IfPath(path).Len())
}
