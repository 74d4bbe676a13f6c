package core

import (
	"io"
	"log"
)

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NewStdLogger returns a Logger that writes through the standard log package
func NewStdLogger(w io.Writer, prefix string) Logger {
	return log.New(w, prefix, log.LstdFlags)
}

// NopLogger discards everything
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(format string, args ...interface{}) {}
