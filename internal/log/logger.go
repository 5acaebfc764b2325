// Package log is the diagnostic logger shared by fatfinder's packages.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = NewLogger(os.Stderr)

// NewLogger builds a text logger writing to out at Info level.
func NewLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l
}

// SetDebug toggles debug output.
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
		return
	}
	logger.SetLevel(logrus.InfoLevel)
}

// SetOutput redirects log output.
func SetOutput(out io.Writer) {
	logger.SetOutput(out)
}

// Logger returns the shared logger.
func Logger() *logrus.Logger {
	return logger
}

// WithField starts an entry carrying one field.
func WithField(key string, value interface{}) *logrus.Entry {
	return logger.WithField(key, value)
}

// WithFields starts an entry carrying fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
