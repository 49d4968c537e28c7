package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var CLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`, Action: nil},

		// Preprocessor directives survive only when the input skipped
		// preprocessing; they are elided either way.
		{Name: "Directive", Pattern: `#[^\n]*`, Action: nil},

		// Keywords and Identifiers (order matters)
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},

		// Integer literals
		{Name: "Integer", Pattern: `0x[0-9a-fA-F]+|[0-9]+`, Action: nil},

		// Operators (longest first)
		{Name: "Operator", Pattern: `(\|\||&&|==|!=|<=|>=|\+\+|--|->|\+=|-=|\*=|/=|%=|=|[-+*/%!&|<>])`, Action: nil},

		// Punctuation (must come after operators)
		{Name: "Punctuation", Pattern: `[{}()\[\];,.]`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
