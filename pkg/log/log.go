package log

import "github.com/sirupsen/logrus"

// Logger is the logging surface used throughout the module. Packages
// accept a Logger rather than a concrete implementation so that the
// core stays silent (and allocation free) unless a caller wires one in.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger backed by a logrus logger with the default
// text formatter.
func New() Logger {
	l := logrus.New()
	l.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
	}
	return l
}

// Wrap adapts an existing logrus logger to the Logger interface.
func Wrap(l *logrus.Logger) Logger {
	return l
}
