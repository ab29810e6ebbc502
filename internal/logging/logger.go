// Package logging decouples the application from the concrete logging
// framework. Components that take a Logger in their constructor can be
// tested without touching global logrus state.
package logging

import "github.com/sirupsen/logrus"

// Logger is the structured logging interface used by injected components.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached.
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached.
	WithField(key string, value interface{}) Logger
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

var std = logrus.New()

// GetLogger returns the shared logrus instance used by package-level `log`
// variables across the application.
func GetLogger() *logrus.Logger {
	return std
}

// SetAllLogLevels sets the level on the global logrus logger and the shared
// instance, so loggers created before configuration pick it up too.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
	std.SetLevel(level)
}
