// Package logging wraps log/slog with the small, level-gated interface
// cmd/slip39 and internal/cli use to report command outcomes. The core
// packages (pkg/slip39, pkg/shamir, internal/feistel, pkg/sharecodec,
// internal/gf256, internal/bitpacker) never import this package, they
// return errors, and only the CLI layer decides how to report them.
package logging

import (
	"fmt"
	"log"
	"log/slog"
	"os"
)

// Logger is a thin, level-gated wrapper over a *slog.Logger.
type Logger struct {
	logger *slog.Logger
	debug  bool
}

// NewLogger returns a Logger writing text-formatted lines to stderr. When
// debug is true, Debug/Debugf lines are emitted as well.
func NewLogger(debug bool) *Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{logger: slog.New(handler), debug: debug}
}

// DefaultLogger returns a Logger with debug logging disabled.
func DefaultLogger() *Logger {
	return NewLogger(false)
}

// Info logs an informational message with structured key/value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

// Debug logs a debug message, a no-op unless debug logging is enabled.
func (l *Logger) Debug(msg string, args ...any) {
	if l.debug {
		l.logger.Debug(msg, args...)
	}
}

// Debugf logs a formatted debug message, a no-op unless debug logging is
// enabled.
func (l *Logger) Debugf(format string, args ...any) {
	if l.debug {
		l.logger.Debug(fmt.Sprintf(format, args...))
	}
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.logger.Error(err.Error())
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

// MaybeError logs err if it is non-nil; a convenience for deferred error
// checks at command boundaries.
func (l *Logger) MaybeError(err error) {
	if err != nil {
		l.logger.Error(err.Error())
	}
}

// Fatalf logs a formatted message and exits the process with status 1.
func (l *Logger) Fatalf(format string, args ...any) {
	log.Fatalf(format, args...)
}
