// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Emits JSON or text lines with configurable level for the API and CLI

package structured

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options configures the logger
type Options struct {
	// Level is one of debug, info, warn, error (default info)
	Level string

	// Format is "json" or "text" (default json)
	Format string

	// Output defaults to stderr
	Output io.Writer
}

// Logger implements interfaces.Logger on top of a logrus.Logger
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger from opts
func New(opts Options) (*Logger, error) {
	level, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(defaultString(opts.Level, "info"))))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	l := logrus.New()
	l.SetLevel(level)
	if opts.Output != nil {
		l.SetOutput(opts.Output)
	} else {
		l.SetOutput(os.Stderr)
	}

	switch strings.ToLower(defaultString(opts.Format, "json")) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	return &Logger{entry: logrus.NewEntry(l)}, nil
}

// With returns a child logger that always carries fields
func (l *Logger) With(fields map[string]interface{}) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

func defaultString(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
