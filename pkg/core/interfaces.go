package core

import (
	"fmt"
	"io"
)

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// StdLogger writes log lines to an io.Writer, one message per line
type StdLogger struct {
	out    io.Writer
	prefix string
}

// NewStdLogger creates a logger writing to out
func NewStdLogger(out io.Writer, prefix string) *StdLogger {
	return &StdLogger{out: out, prefix: prefix}
}

// Printf implements Logger. A trailing newline is added when missing.
func (l *StdLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if len(message) == 0 || message[len(message)-1] != '\n' {
		message += "\n"
	}
	fmt.Fprint(l.out, l.prefix+message)
}

// NopLogger discards everything
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(format string, args ...interface{}) {}
