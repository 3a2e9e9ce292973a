// Package shell provides Bourne shell style word splitting and quoting
// of command line arguments.
package shell

import (
	"github.com/kballard/go-shellquote"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Tokenize splits a string into words in the same way a POSIX shell
// would do for a simple command, and appends them to dst. Whitespace
// separates words, single and double quotes group characters into a
// single word, and backslashes escape the character that follows.
//
// Strings containing unterminated quotes or a trailing backslash are
// rejected with InvalidArgument. In that case dst is returned
// unmodified.
func Tokenize(dst []string, s string) ([]string, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return dst, status.Errorf(codes.InvalidArgument, "Failed to tokenize %#v: %s", s, err)
	}
	return append(dst, words...), nil
}

// Join quotes the provided words, so that calling Tokenize() on the
// result yields the original words.
func Join(words ...string) string {
	return shellquote.Join(words...)
}
