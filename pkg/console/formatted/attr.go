package formatted

import (
	"io"
)

// sgrAttribute identifies which of the "Select Graphic Rendition"
// parameters tracked by vt100State is altered by a node.
type sgrAttribute int

const (
	sgrIntensity sgrAttribute = iota
	sgrForegroundColor
	sgrAttributeCount
)

// sgr applies a single "Select Graphic Rendition" parameter to the
// text contained in its base node.
type sgr struct {
	base      Node
	attribute sgrAttribute
	value     int
}

func (n *sgr) writePlainText(w io.StringWriter) (int, error) {
	return n.base.writePlainText(w)
}

func (n *sgr) writeVT100(w io.StringWriter, state *vt100State) (int, error) {
	state.push(n.attribute, n.value)
	defer state.pop(n.attribute)
	return n.base.writeVT100(w, state)
}

// Bold renders text with bold mode enabled.
func Bold(base Node) Node {
	return &sgr{base: base, attribute: sgrIntensity, value: 1}
}

func foreground(base Node, color int) Node {
	return &sgr{base: base, attribute: sgrForegroundColor, value: color}
}

// Red renders text with a red foreground color.
func Red(base Node) Node { return foreground(base, 31) }

// Green renders text with a green foreground color.
func Green(base Node) Node { return foreground(base, 32) }

// Yellow renders text with a yellow foreground color.
func Yellow(base Node) Node { return foreground(base, 33) }

// Cyan renders text with a cyan foreground color.
func Cyan(base Node) Node { return foreground(base, 36) }
