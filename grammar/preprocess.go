package grammar

import "regexp"

// The parser does not handle preprocessor input: comments and directives
// are removed up front, the way the original pipeline feeds its C parser
// already-clean source text. Line counts are preserved so positions in
// later diagnostics still point into the file the user wrote.

var (
	blockComment = regexp.MustCompile(`(?s)/\*([^*]|\*+[^*/])*\*+/`)
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	directive    = regexp.MustCompile(`(?m)^[ \t]*#[^\n]*`)
)

// Preprocess strips comments and # directives from source.
func Preprocess(source string) string {
	out := blockComment.ReplaceAllStringFunc(source, blankKeepingNewlines)
	out = lineComment.ReplaceAllString(out, "")
	out = directive.ReplaceAllString(out, "")
	return out
}

func blankKeepingNewlines(s string) string {
	blanked := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			blanked[i] = '\n'
		} else {
			blanked[i] = ' '
		}
	}
	return string(blanked)
}
