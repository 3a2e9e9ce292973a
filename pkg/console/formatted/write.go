package formatted

import (
	"io"
	"strconv"
)

// WritePlainText writes the text contained in a node without any
// formatting being applied to it.
func WritePlainText(n Node, w io.StringWriter) (int, error) {
	return n.writePlainText(w)
}

// vt100State keeps track of the SGR parameters that are currently
// active on the terminal, and the ones that should be active when the
// next piece of text is written. Escape sequences are only emitted
// right before text is written, so that directly nested attributes are
// combined into a single escape sequence.
type vt100State struct {
	current [sgrAttributeCount]int
	desired [sgrAttributeCount][]int
}

func newVT100State() *vt100State {
	// 22: normal intensity, 39: default foreground color.
	defaults := [sgrAttributeCount]int{22, 39}
	s := &vt100State{current: defaults}
	for attribute, value := range defaults {
		s.desired[attribute] = []int{value}
	}
	return s
}

func (s *vt100State) push(attribute sgrAttribute, value int) {
	s.desired[attribute] = append(s.desired[attribute], value)
}

func (s *vt100State) pop(attribute sgrAttribute) {
	s.desired[attribute] = s.desired[attribute][:len(s.desired[attribute])-1]
}

// flush emits a single escape sequence that changes all attributes
// whose current value differs from the desired value.
func (s *vt100State) flush(w io.StringWriter) (int, error) {
	var sequence []byte
	for attribute := range s.current {
		desired := s.desired[attribute][len(s.desired[attribute])-1]
		if desired == s.current[attribute] {
			continue
		}
		s.current[attribute] = desired
		if sequence == nil {
			sequence = append(sequence, "\x1b["...)
		} else {
			sequence = append(sequence, ';')
		}
		sequence = strconv.AppendInt(sequence, int64(desired), 10)
	}
	if sequence == nil {
		return 0, nil
	}
	return w.WriteString(string(append(sequence, 'm')))
}

// WriteVT100 writes the text contained in a node, using VT100 style
// escape sequences for any formatting directives. Attributes are reset
// to their defaults at the end.
func WriteVT100(n Node, w io.StringWriter) (int, error) {
	state := newVT100State()
	nTotal, err := n.writeVT100(w, state)
	if err != nil {
		return nTotal, err
	}
	nPart, err := state.flush(w)
	return nTotal + nPart, err
}
