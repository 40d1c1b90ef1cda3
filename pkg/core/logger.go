package core

import "log"

// Logger is the interface the renderer uses for diagnostic output. It is
// satisfied by *log.Logger and by test doubles that capture output.
type Logger interface {
	Printf(format string, args ...interface{})
}

// DefaultLogger wraps the standard library logger.
type DefaultLogger struct {
	*log.Logger
}

// NewDefaultLogger creates a Logger backed by the standard library's
// default logger.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{Logger: log.Default()}
}
