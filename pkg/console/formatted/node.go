// Package formatted provides trees of text with formatting directives
// attached to them, which can either be written as plain text, or with
// VT100 escape sequences for display on a terminal.
package formatted

import (
	"fmt"
	"io"
)

// Node of formatted text that can be written either as plain text, or
// as a string containing VT100 escape sequences.
type Node interface {
	writePlainText(w io.StringWriter) (int, error)
	writeVT100(w io.StringWriter, state *vt100State) (int, error)
}

type text string

// Text causes a piece of text to be written in literal form.
func Text(body string) Node {
	return text(body)
}

// Textf causes a piece of text containing string formatting directives
// to be written after performing substitutions.
func Textf(format string, args ...any) Node {
	return text(fmt.Sprintf(format, args...))
}

func (n text) writePlainText(w io.StringWriter) (int, error) {
	return w.WriteString(string(n))
}

func (n text) writeVT100(w io.StringWriter, state *vt100State) (int, error) {
	nTotal, err := state.flush(w)
	if err != nil {
		return nTotal, err
	}
	nPart, err := w.WriteString(string(n))
	return nTotal + nPart, err
}

type join []Node

// Join multiple pieces of formatted text together and write them in
// concatenated form.
func Join(parts ...Node) Node {
	return join(parts)
}

func (n join) writePlainText(w io.StringWriter) (int, error) {
	var nTotal int
	for _, part := range n {
		nPart, err := part.writePlainText(w)
		nTotal += nPart
		if err != nil {
			return nTotal, err
		}
	}
	return nTotal, nil
}

func (n join) writeVT100(w io.StringWriter, state *vt100State) (int, error) {
	var nTotal int
	for _, part := range n {
		nPart, err := part.writeVT100(w, state)
		nTotal += nPart
		if err != nil {
			return nTotal, err
		}
	}
	return nTotal, nil
}
