package ast

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota

	// High-level constructs
	FILE
	BLOCK
	FUNC_DEF
	STRUCT_DEF
	ENUM_DEF
	PROTO

	// Statements
	IF
	WHILE
	CONTINUE
	ASSIGN
	DECL
	EXPR_STMT

	// Synthetic CFG markers. These never appear in source or in printed
	// output; they only live as vertices of a control-flow graph.
	COND_ENTRY
	COND_EXIT
	LOOP_EXIT
	FUNC_EXIT

	// Expressions
	IDENT
	INT_LIT
	BINARY_EXPR
	UNARY_EXPR
	POSTFIX_EXPR
	CALL_EXPR
	FIELD_ACCESS_EXPR
	PAREN_EXPR

	// Type specifiers
	NAMED_TYPE
	ENUM_TYPE
	STRUCT_TYPE
	PTR_TYPE
)

var nodeTypeNames = [...]string{
	ILLEGAL:           "ILLEGAL",
	FILE:              "FILE",
	BLOCK:             "BLOCK",
	FUNC_DEF:          "FUNC_DEF",
	STRUCT_DEF:        "STRUCT_DEF",
	ENUM_DEF:          "ENUM_DEF",
	PROTO:             "PROTO",
	IF:                "IF",
	WHILE:             "WHILE",
	CONTINUE:          "CONTINUE",
	ASSIGN:            "ASSIGN",
	DECL:              "DECL",
	EXPR_STMT:         "EXPR_STMT",
	COND_ENTRY:        "COND_ENTRY",
	COND_EXIT:         "COND_EXIT",
	LOOP_EXIT:         "LOOP_EXIT",
	FUNC_EXIT:         "FUNC_EXIT",
	IDENT:             "IDENT",
	INT_LIT:           "INT_LIT",
	BINARY_EXPR:       "BINARY_EXPR",
	UNARY_EXPR:        "UNARY_EXPR",
	POSTFIX_EXPR:      "POSTFIX_EXPR",
	CALL_EXPR:         "CALL_EXPR",
	FIELD_ACCESS_EXPR: "FIELD_ACCESS_EXPR",
	PAREN_EXPR:        "PAREN_EXPR",
	NAMED_TYPE:        "NAMED_TYPE",
	ENUM_TYPE:         "ENUM_TYPE",
	STRUCT_TYPE:       "STRUCT_TYPE",
	PTR_TYPE:          "PTR_TYPE",
}

func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) && nodeTypeNames[t] != "" {
		return nodeTypeNames[t]
	}
	return "ILLEGAL"
}
