package java

import (
	"jvmrules.build/pkg/shell"
)

// TokenizeJavacopts splits compiler options using Bourne shell
// tokenization, so that a single --javacopt or javacopts entry may
// carry multiple options (e.g., "-source 8 -target 8").
//
// Options that cannot be tokenized are passed on unmodified, as a
// single token. Any error is then reported by the tool receiving the
// option.
func TokenizeJavacopts(options []string) []string {
	result := []string{}
	for _, option := range options {
		if tokenized, err := shell.Tokenize(result, option); err == nil {
			result = tokenized
		} else {
			result = append(result, option)
		}
	}
	return result
}
