// Package unfold rewrites the single event loop of a protocol program
// into a finite nested-conditional tree of depth k, giving each simulated
// iteration its own generation of the synchronization variables.
package unfold

import (
	"rondo/internal/ast"
)

// SyncVars maps the two synchronization roles to their concrete
// identifier names, as supplied by configuration.
type SyncVars struct {
	Round string
	Mbox  string
}

// PreconditionError reports input that violates the transform's
// contract. It is fatal: the unfold aborts and nothing is retried.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string {
	return e.Msg
}

// FindMainLoop returns the first loop reachable from root in preorder,
// or nil. The transform's precondition is that exactly one exists.
func FindMainLoop(root ast.Node) *ast.While {
	var found *ast.While
	ast.Walk(root, func(n ast.Node) bool {
		if w, ok := n.(*ast.While); ok && found == nil {
			found = w
			return false
		}
		return true
	})
	return found
}

// Unfold mutates root in place, unrolling its main loop k times. Each
// top-level conditional handler of the loop body gets a renamed copy of
// the body spliced in before every continue it reaches, recursively, for
// k generations. Generation declarations round_0..round_k and
// mbox_0..mbox_k are synthesized next to the originals.
//
// Within one scope the mbox generation always lags the round generation
// by one: the mailbox produced by the previous receive feeds the branch
// that computes the next round.
func Unfold(root ast.Node, k int, vars SyncVars) error {
	loop := FindMainLoop(root)
	if loop == nil {
		return &PreconditionError{Msg: "no main loop found: the program must contain a while statement"}
	}

	// The iteration template is copied once from the original body and
	// stays immutable; every splice point receives its own value copy.
	template := ast.CloneStmts(loop.Body.Items)

	declareGenerations(root, []string{vars.Round, vars.Mbox}, k)

	for _, s := range loop.Body.Items {
		if handler, ok := s.(*ast.If); ok {
			expand(handler.Then, template, vars, 0, k-1)
		}
	}
	return nil
}

// expand performs one recursive expansion step on a handler branch at the
// given iteration, bounded by bound.
func expand(branch *ast.Block, template []ast.Stmt, vars SyncVars, iteration, bound int) {
	// Rename the branch's own non-conditional statements. At iteration 0
	// the unsuffixed mbox name stands: no prior generation exists yet.
	for _, s := range branch.Items {
		if _, isHandler := s.(*ast.If); isHandler {
			continue
		}
		if iteration > 0 {
			renameGeneration(s, vars.Mbox, iteration-1)
		}
		renameGeneration(s, vars.Round, iteration)
	}

	// A fresh copy of the iteration template, renamed to this iteration:
	// its plain statements entirely, its nested handlers only in their
	// guard conditions. Handler bodies are renamed when recursion reaches
	// them.
	body := ast.CloneStmts(template)
	for _, s := range body {
		if handler, isHandler := s.(*ast.If); isHandler {
			renameGeneration(handler.Cond, vars.Mbox, iteration)
			renameGeneration(handler.Cond, vars.Round, iteration)
			continue
		}
		renameGeneration(s, vars.Mbox, iteration)
		renameGeneration(s, vars.Round, iteration)
	}

	spliceBeforeContinues(branch, body)

	// The splice introduced the template's own handlers into the branch.
	// Recurse into every handler now present, or close it off with the
	// terminal renaming when the bound is reached.
	for _, s := range branch.Items {
		handler, isHandler := s.(*ast.If)
		if !isHandler {
			continue
		}
		if bound > iteration {
			expand(handler.Then, template, vars, iteration+1, bound)
			continue
		}
		for _, t := range handler.Then.Items {
			if _, nested := t.(*ast.If); nested {
				continue
			}
			renameGeneration(t, vars.Round, iteration+1)
			renameGeneration(t, vars.Mbox, iteration)
		}
	}
}

// spliceBeforeContinues walks the blocks under root and, in every block
// whose top-level statements include a continue, splices a fresh copy of
// body immediately before each continue, keeping the continue as the
// final statement. Blocks below a spliced one are not descended into:
// the copies' own continues belong to the next iteration. A branch
// without any continue is left untouched.
func spliceBeforeContinues(root *ast.Block, body []ast.Stmt) {
	ast.Walk(root, func(n ast.Node) bool {
		block, ok := n.(*ast.Block)
		if !ok {
			return true
		}
		if !hasTopLevelContinue(block) {
			return true
		}
		items := make([]ast.Stmt, 0, len(block.Items)+len(body))
		for _, s := range block.Items {
			if _, isContinue := s.(*ast.Continue); isContinue {
				items = append(items, ast.CloneStmts(body)...)
			}
			items = append(items, s)
		}
		block.Items = items
		return false
	})
}

func hasTopLevelContinue(b *ast.Block) bool {
	for _, s := range b.Items {
		if _, ok := s.(*ast.Continue); ok {
			return true
		}
	}
	return false
}

// renameGeneration rewrites every reference to name under n into the
// concrete name of generation i.
func renameGeneration(n ast.Node, name string, i int) {
	ast.RenameIdents(n, map[string]bool{name: true}, func(string) string {
		return ast.GenName(name, i)
	})
}
