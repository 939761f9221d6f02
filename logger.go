package lotto

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// DefaultLogger implements Logger using standard log package
type DefaultLogger struct {
	debug bool
}

// NewDefaultLogger creates a logger writing to the standard logger; debug
// messages are printed only when debug is true
func NewDefaultLogger(debug bool) *DefaultLogger {
	return &DefaultLogger{debug: debug}
}

// Info logs an info message
func (l *DefaultLogger) Info(msg string, args ...any) {
	log.Printf("[INFO] "+msg, args...)
}

// Error logs an error message
func (l *DefaultLogger) Error(msg string, args ...any) {
	log.Printf("[ERROR] "+msg, args...)
}

// Debug logs a debug message
func (l *DefaultLogger) Debug(msg string, args ...any) {
	if !l.debug {
		return
	}
	log.Printf("[DEBUG] "+msg, args...)
}

// SilentLogger implements Logger interface but does not output any logs
// This is useful for testing environments where log output is not desired
type SilentLogger struct{}

// NewSilentLogger creates a new silent logger instance
func NewSilentLogger() *SilentLogger {
	return &SilentLogger{}
}

// Info does nothing (silent)
func (l *SilentLogger) Info(msg string, args ...any) {}

// Error does nothing (silent)
func (l *SilentLogger) Error(msg string, args ...any) {}

// Debug does nothing (silent)
func (l *SilentLogger) Debug(msg string, args ...any) {}

// SlogLogger adapts a *slog.Logger to the printf-style Logger interface
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps the given slog logger; a nil logger uses slog.Default()
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

// Info logs an info message
func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(fmt.Sprintf(msg, args...))
}

// Error logs an error message
func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(fmt.Sprintf(msg, args...))
}

// Debug logs a debug message
func (l *SlogLogger) Debug(msg string, args ...any) {
	if !l.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.logger.Debug(fmt.Sprintf(msg, args...))
}

// NewLoggerFromConfig builds the logger described by the log section.
// Format "plain" uses DefaultLogger, "text" and "json" use slog handlers on w.
func NewLoggerFromConfig(config *LogConfig, w io.Writer) Logger {
	if config == nil {
		config = DefaultLogConfig()
	}
	if w == nil {
		w = os.Stderr
	}

	level := parseLogLevel(config.Level)
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(config.Format) {
	case "json":
		return NewSlogLogger(slog.New(slog.NewJSONHandler(w, opts)))
	case "text":
		return NewSlogLogger(slog.New(slog.NewTextHandler(w, opts)))
	case "silent":
		return NewSilentLogger()
	default:
		return NewDefaultLogger(level <= slog.LevelDebug)
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
