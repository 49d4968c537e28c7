package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintDeclarations(t *testing.T) {
	enum := &Decl{Type: &EnumType{Tag: "phase_t"}, Name: "round"}
	assert.Equal(t, "enum phase_t round;", enum.String())

	ptr := &Decl{Type: &PtrType{Elem: &NamedType{Name: "void"}}, Name: "mbox"}
	assert.Equal(t, "void *mbox;", ptr.String())

	structPtr := &Decl{Type: &PtrType{Elem: &StructType{Tag: "list"}}, Name: "log"}
	assert.Equal(t, "struct list *log;", structPtr.String())

	init := &Decl{Type: &NamedType{Name: "int"}, Name: "view", Init: &IntLit{Value: "0"}}
	assert.Equal(t, "int view = 0;", init.String())
}

func TestPrintNestedBlocks(t *testing.T) {
	handler := &If{
		Cond: &BinaryExpr{Op: "==", Left: &Ident{Name: "round"}, Right: &IntLit{Value: "1"}},
		Then: &Block{Items: []Stmt{
			&Assign{Target: &Ident{Name: "round"}, Op: "=", Value: &IntLit{Value: "3"}},
			&Continue{},
		}},
	}
	expected := "if (round == 1)\n{\n  round = 3;\n  continue;\n}"
	assert.Equal(t, expected, handler.String())

	loop := &While{Cond: &IntLit{Value: "1"}, Body: &Block{Items: []Stmt{handler}}}
	expected = "while (1)\n{\n  if (round == 1)\n  {\n    round = 3;\n    continue;\n  }\n}"
	assert.Equal(t, expected, loop.String())
}

func TestPrintGuardForms(t *testing.T) {
	// Guard vertices carry no body; they print as bare conditions.
	guard := &If{Cond: &Ident{Name: "x"}}
	assert.Equal(t, "if (x)", guard.String())

	negated := &If{Cond: &UnaryExpr{Op: "!", X: &Ident{Name: "x"}}}
	assert.Equal(t, "if (!x)", negated.String())

	loopGuard := &While{Cond: &IntLit{Value: "1"}}
	assert.Equal(t, "while (1)", loopGuard.String())
}

func TestPrintFuncDefAndProto(t *testing.T) {
	params := []*Param{
		{Type: &NamedType{Name: "int"}, Name: "view"},
		{Type: &PtrType{Elem: &StructType{Tag: "msg"}}, Name: "m"},
	}
	proto := &Proto{Return: &PtrType{Elem: &NamedType{Name: "void"}}, Name: "havoc", Params: params}
	assert.Equal(t, "void *havoc(int view, struct msg *m);", proto.String())

	fn := &FuncDef{
		Return: &NamedType{Name: "int"},
		Name:   "main",
		Body: &Block{Items: []Stmt{
			&ExprStmt{X: &PostfixExpr{Op: "++", X: &Ident{Name: "view"}}},
		}},
	}
	assert.Equal(t, "int main()\n{\n  view++;\n}", fn.String())
}

func TestPrintExpressions(t *testing.T) {
	access := &FieldAccess{X: &Ident{Name: "m"}, Arrow: true, Field: "view"}
	assert.Equal(t, "m->view", access.String())

	call := &CallExpr{Func: "havoc", Args: []Expr{&Ident{Name: "round"}, &IntLit{Value: "2"}}}
	assert.Equal(t, "havoc(round, 2)", call.String())

	cond := &BinaryExpr{
		Op:    "&&",
		Left:  &ParenExpr{X: &BinaryExpr{Op: "==", Left: access, Right: &IntLit{Value: "1"}}},
		Right: &ParenExpr{X: &BinaryExpr{Op: ">", Left: &Ident{Name: "n"}, Right: &IntLit{Value: "0"}}},
	}
	assert.Equal(t, "(m->view == 1) && (n > 0)", cond.String())
}

func TestPrintStructAndEnumDefs(t *testing.T) {
	def := &StructDef{Tag: "msg", Fields: []*Decl{
		{Type: &NamedType{Name: "int"}, Name: "view"},
		{Type: &PtrType{Elem: &StructType{Tag: "list"}}, Name: "log"},
	}}
	assert.Equal(t, "struct msg\n{\n  int view;\n  struct list *log;\n};", def.String())

	enum := &EnumDef{Tag: "phase_t", Consts: []string{"PREPARE", "COMMIT"}}
	assert.Equal(t, "enum phase_t\n{\n  PREPARE,\n  COMMIT\n};", enum.String())
}

func TestPrintMarkers(t *testing.T) {
	assert.Equal(t, "<cond-entry>", (&CondEntry{}).String())
	assert.Equal(t, "<cond-exit>", (&CondExit{}).String())
	assert.Equal(t, "<loop-exit>", (&LoopExit{}).String())
	assert.Equal(t, "<func-exit>", (&FuncExit{}).String())
}
