package ast

import (
	"fmt"
	"regexp"
)

// Synchronization variables are annotated with the generation they belong
// to by suffixing "_<i>" to the configured base name.

var genSuffix = regexp.MustCompile(`_(\d+)$`)

// GenName returns the concrete name of a sync variable at generation i.
func GenName(name string, i int) string {
	return fmt.Sprintf("%s_%d", name, i)
}

// BaseName strips a generation suffix, if any, so that "round_2" and
// "round" compare equal when matching sync variable references.
func BaseName(name string) string {
	return genSuffix.ReplaceAllString(name, "")
}
