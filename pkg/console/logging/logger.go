// Package logging provides a logger that writes formatted messages to
// the console.
package logging

import (
	"bytes"
	"io"
	"os"

	"jvmrules.build/pkg/console/formatted"
)

// Logger of messages that are displayed to the user.
type Logger interface {
	Error(message formatted.Node)
	Fatal(message formatted.Node)
	Info(message formatted.Node)
	Warning(message formatted.Node)
}

// FormattedNodeWriter is the signature of formatted.WritePlainText()
// and formatted.WriteVT100().
type FormattedNodeWriter func(message formatted.Node, w io.StringWriter) (int, error)

type consoleLogger struct {
	w              io.Writer
	writeFormatted FormattedNodeWriter
	exit           func(code int)
}

// NewConsoleLogger creates a Logger that writes messages to a stream,
// prefixed with their severity.
func NewConsoleLogger(w io.Writer, writeFormatted FormattedNodeWriter) Logger {
	return &consoleLogger{
		w:              w,
		writeFormatted: writeFormatted,
		exit:           os.Exit,
	}
}

func (l *consoleLogger) log(prefix, message formatted.Node) {
	var b bytes.Buffer
	l.writeFormatted(formatted.Join(prefix, message, formatted.Text("\n")), &b)
	l.w.Write(b.Bytes())
}

func (l *consoleLogger) Error(message formatted.Node) {
	l.log(formatted.Bold(formatted.Red(formatted.Text("ERROR: "))), message)
}

func (l *consoleLogger) Fatal(message formatted.Node) {
	l.Error(message)
	l.exit(1)
}

func (l *consoleLogger) Info(message formatted.Node) {
	l.log(formatted.Green(formatted.Text("INFO: ")), message)
}

func (l *consoleLogger) Warning(message formatted.Node) {
	l.log(formatted.Yellow(formatted.Text("WARNING: ")), message)
}
