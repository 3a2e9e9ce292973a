package logging

import (
	"fmt"
	"os"

	"jvmrules.build/pkg/console/formatted"

	"golang.org/x/term"
)

// Color indicates whether log messages should contain VT100 escape
// sequences. It can be used as the value of a command line flag.
type Color string

const (
	// ColorAuto enables colors if standard error is a terminal.
	ColorAuto Color = "auto"
	// ColorYes always enables colors.
	ColorYes Color = "yes"
	// ColorNo never enables colors.
	ColorNo Color = "no"
)

func (c *Color) String() string {
	return string(*c)
}

// Set the color mode from its textual representation.
func (c *Color) Set(value string) error {
	switch Color(value) {
	case ColorAuto, ColorYes, ColorNo:
		*c = Color(value)
		return nil
	}
	return fmt.Errorf("invalid color mode %#v, expected \"auto\", \"yes\" or \"no\"", value)
}

// Type returns the name of the type, as displayed in usage messages.
func (*Color) Type() string {
	return "color"
}

// NewLoggerFromColor creates a Logger that writes to standard error,
// using VT100 escape sequences depending on the color mode.
func NewLoggerFromColor(color Color) Logger {
	w := os.Stderr
	writeFormatted := formatted.WritePlainText
	switch color {
	case ColorYes:
		writeFormatted = formatted.WriteVT100
	case ColorAuto:
		if term.IsTerminal(int(w.Fd())) {
			writeFormatted = formatted.WriteVT100
		}
	}
	return NewConsoleLogger(w, writeFormatted)
}
