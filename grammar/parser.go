package grammar

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"rondo/internal/ast"
)

// ParseFile reads, preprocesses and parses path into the AST the
// transforms operate on.
func ParseFile(path string) (*ast.File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseSource(path, string(source))
}

// ParseSource parses source, naming positions after path.
func ParseSource(path, source string) (*ast.File, error) {
	src := Preprocess(source)

	parser, err := participle.Build[Program](
		participle.Lexer(CLexer),
		participle.Elide("Whitespace", "Comment", "Directive"),
		participle.UseLookahead(4),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	program, err := parser.ParseString(path, src)
	if err != nil {
		reportParseError(src, err)
		return nil, err
	}
	return lowerProgram(program), nil
}

// reportParseError prints a friendly caret-style parse error message.
func reportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("Unexpected error: %s", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("Syntax error at unknown location: %s", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"

	color.Red("Syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("→ %s\n", pe.Message())
}
