package cfg

import "rondo/internal/ast"

// Read-only queries over CFGs and extracted paths, consumed by the
// dead-code-elimination and async-extraction passes. Sync variable names
// match modulo generation suffix: an assignment to round_2 counts as an
// assignment to round.

// IsSyncVarAssignment reports whether n assigns (with plain "=") to
// variable, disregarding the generation suffix of the lvalue.
func IsSyncVarAssignment(n ast.Stmt, variable string) bool {
	a, ok := n.(*ast.Assign)
	if !ok || a.Op != "=" {
		return false
	}
	id, ok := a.Target.(*ast.Ident)
	if !ok {
		return false
	}
	return ast.BaseName(id.Name) == variable
}

// IsVarIncrement reports whether n bumps variable: either a postfix
// increment or a direct assignment to it.
func IsVarIncrement(n ast.Stmt, variable string) bool {
	if e, ok := n.(*ast.ExprStmt); ok {
		if p, isPostfix := e.X.(*ast.PostfixExpr); isPostfix && p.Op == "++" {
			if id, isIdent := p.X.(*ast.Ident); isIdent {
				return id.Name == variable
			}
		}
	}
	if a, ok := n.(*ast.Assign); ok {
		if id, isIdent := a.Target.(*ast.Ident); isIdent {
			return id.Name == variable
		}
	}
	return false
}

// AssignmentsByValue maps each rvalue rendering to the vertices of g
// where variable is assigned that value.
//
// For
//
//	foo = val1; foo = val2; foo = val1;
//
// the result is {val1: [n1, n3], val2: [n2]}.
func AssignmentsByValue(g *Graph, variable string) map[string][]*ast.Assign {
	byValue := make(map[string][]*ast.Assign)
	for _, n := range g.nodes {
		if !IsSyncVarAssignment(n, variable) {
			continue
		}
		a := n.(*ast.Assign)
		value := a.Value.String()
		byValue[value] = append(byValue[value], a)
	}
	return byValue
}

// VariableIncrements returns the vertices of g that increment variable.
func VariableIncrements(g *Graph, variable string) []ast.Stmt {
	var hits []ast.Stmt
	for _, n := range g.nodes {
		if IsVarIncrement(n, variable) {
			hits = append(hits, n)
		}
	}
	return hits
}

// CountAssignments counts the statements of path assigning to variable.
func CountAssignments(path []ast.Stmt, variable string) int {
	count := 0
	for _, n := range path {
		if IsSyncVarAssignment(n, variable) {
			count++
		}
	}
	return count
}

// CountContinues counts the continue statements of path.
func CountContinues(path []ast.Stmt) int {
	count := 0
	for _, n := range path {
		if _, ok := n.(*ast.Continue); ok {
			count++
		}
	}
	return count
}
