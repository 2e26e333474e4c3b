// Package log provides the logging interface used throughout the
// emulator, backed by logrus.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging surface used by the emulator's components.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain text at the info level.
func New() Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
	return l
}

// NewWithLevel returns a Logger writing plain text at the given
// level, which must be one understood by logrus.ParseLevel.
func NewWithLevel(level string) (Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l := New().(*logrus.Logger)
	l.SetLevel(lvl)
	return l, nil
}

// NewWithWriter returns a Logger writing plain text to w at the
// debug level.
func NewWithWriter(w io.Writer) Logger {
	l := New().(*logrus.Logger)
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	return l
}
