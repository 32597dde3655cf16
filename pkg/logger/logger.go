// Package logger provides structured logging for the service built on
// logrus. Every subsystem gets its own module field so log lines can be
// traced back to their origin.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LoggingConfig controls logger construction.
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
	Output io.Writer
}

// Logger wraps a logrus entry so call sites can chain WithField/WithError
// without importing logrus directly.
type Logger struct {
	*logrus.Entry
}

// New constructs a logger from the supplied configuration.
func New(cfg LoggingConfig) *Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfg.Output != nil {
		l.SetOutput(cfg.Output)
	} else {
		l.SetOutput(os.Stdout)
	}

	return &Logger{Entry: logrus.NewEntry(l)}
}

// NewDefault returns an info-level text logger tagged with the given module
// name. Services fall back to this when no logger is injected.
func NewDefault(module string) *Logger {
	log := New(LoggingConfig{Level: "info", Format: "text"})
	return log.WithModule(module)
}

// WithModule returns a logger carrying a module field.
func (l *Logger) WithModule(module string) *Logger {
	return &Logger{Entry: l.Entry.WithField("module", module)}
}

// WithField returns a logger with an extra structured field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields returns a logger with several extra structured fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}

// WithError returns a logger with the error attached.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Entry: l.Entry.WithError(err)}
}
