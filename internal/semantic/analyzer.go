// Package semantic checks the unfolding preconditions ahead of the
// transform and reports what the transform itself deliberately leaves
// silent: handlers that never reach a continue, sync variables declared
// in a shape the declaration phase will skip, and a missing or ambiguous
// main loop. The diagnostics are advisory; the engine still degrades to
// doing less rather than failing, as specified.
package semantic

import (
	"fmt"

	"rondo/internal/ast"
	"rondo/internal/unfold"
)

type SemanticError struct {
	Message  string
	Position ast.Position
}

type Analyzer struct {
	errors []SemanticError
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) Errors() []SemanticError {
	return a.errors
}

// Analyze inspects root against the unfolding contract for vars and
// returns the collected diagnostics.
func (a *Analyzer) Analyze(root ast.Node, vars unfold.SyncVars) []SemanticError {
	a.errors = nil

	loops := a.collectLoops(root)
	switch len(loops) {
	case 0:
		a.addError("no main loop: the program declares no while statement", root.NodePos())
	case 1:
		a.checkHandlers(loops[0])
	default:
		for _, w := range loops[1:] {
			a.addError("ambiguous main loop: more than one while statement", w.Pos)
		}
		a.checkHandlers(loops[0])
	}

	a.checkSyncVarDecl(root, "round", vars.Round)
	a.checkSyncVarDecl(root, "mbox", vars.Mbox)

	return a.errors
}

func (a *Analyzer) collectLoops(root ast.Node) []*ast.While {
	var loops []*ast.While
	ast.Walk(root, func(n ast.Node) bool {
		if w, ok := n.(*ast.While); ok {
			loops = append(loops, w)
		}
		return true
	})
	return loops
}

// checkHandlers flags top-level handlers of the loop body whose branch
// never reaches a continue. The splice pass treats such a handler as a
// no-op, which is usually a mistake in the input protocol.
func (a *Analyzer) checkHandlers(loop *ast.While) {
	if loop.Body == nil {
		return
	}
	for _, s := range loop.Body.Items {
		handler, ok := s.(*ast.If)
		if !ok {
			continue
		}
		if !branchReachesContinue(handler.Then) {
			a.addError("handler branch never reaches a continue statement", handler.Pos)
		}
	}
}

// branchReachesContinue reports whether b contains a continue directly or
// nested inside further handler true-branches.
func branchReachesContinue(b *ast.Block) bool {
	if b == nil {
		return false
	}
	for _, s := range b.Items {
		switch n := s.(type) {
		case *ast.Continue:
			return true
		case *ast.If:
			if branchReachesContinue(n.Then) {
				return true
			}
		}
	}
	return false
}

// checkSyncVarDecl verifies that the configured name for a sync role is
// declared somewhere in one of the two shapes the declaration phase
// recognizes: an enumerated type or a pointer to a named type.
func (a *Analyzer) checkSyncVarDecl(root ast.Node, role, name string) {
	if name == "" {
		a.addError(fmt.Sprintf("sync variable role %q has no configured name", role), root.NodePos())
		return
	}

	declared := false
	recognized := false
	var pos ast.Position
	ast.Walk(root, func(n ast.Node) bool {
		d, ok := n.(*ast.Decl)
		if !ok || d.Name != name {
			return true
		}
		declared = true
		pos = d.Pos
		switch t := d.Type.(type) {
		case *ast.EnumType:
			recognized = true
		case *ast.PtrType:
			switch t.Elem.(type) {
			case *ast.NamedType, *ast.StructType:
				recognized = true
			}
		}
		return true
	})

	if !declared {
		a.addError(fmt.Sprintf("sync variable %q (%s) is never declared", name, role), root.NodePos())
	} else if !recognized {
		a.addError(fmt.Sprintf("declaration of sync variable %q (%s) has an unrecognized shape; generations will not be declared", name, role), pos)
	}
}

func (a *Analyzer) addError(message string, pos ast.Position) {
	a.errors = append(a.errors, SemanticError{Message: message, Position: pos})
}
