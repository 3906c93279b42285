// Package logging builds the structured logger used across todo.
// Logs go to a JSON file when one is configured, to stderr when debugging,
// and nowhere otherwise.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Log levels supported by the logger
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Logger is a slog.Logger that owns its log file.
type Logger struct {
	*slog.Logger
	file *os.File
}

// Options selects where and how much to log.
type Options struct {
	// File receives JSON lines, appended. Empty means no log file.
	File string
	// Level is one of debug, info, warn, error (any case).
	Level string
	// Debug forces debug level and, without a File, logs text to Stderr.
	Debug  bool
	Stderr io.Writer
}

// New creates a Logger from opts.
func New(opts Options) (*Logger, error) {
	level := parseLevel(opts.Level)
	if opts.Debug {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return &Logger{Logger: slog.New(slog.NewJSONHandler(f, handlerOpts)), file: f}, nil
	case opts.Debug && opts.Stderr != nil:
		return &Logger{Logger: slog.New(slog.NewTextHandler(opts.Stderr, handlerOpts))}, nil
	default:
		return Discard(), nil
	}
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// parseLevel converts a string log level to slog.Level.
// Defaults to INFO if the level string is not recognized.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
