// Package logging builds the structured loggers used by the command line
// tool. Cards themselves never log.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelFromEnv returns the level named by LOG_LEVEL (debug, info, warn,
// error), defaulting to warn.
func LevelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger creates a text logger writing to w at the given level
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	return slog.New(handler)
}

// NewJSONLogger creates a JSON logger writing to w at the given level
func NewJSONLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}
