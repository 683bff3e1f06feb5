// Package util holds small shared helpers: structured logging, pool sizing,
// and memory-mapped file reading.
package util

import (
	"io"
	"log/slog"
	"os"
)

// LoggerConfig configures the process logger.
type LoggerConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string
	// JSON selects the JSON handler; text otherwise.
	JSON bool
	// Output defaults to stderr so scan results on stdout stay clean.
	Output io.Writer
}

// DefaultLoggerConfig returns info-level text logging to stderr.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{Level: "info", Output: os.Stderr}
}

// NewLogger builds a slog.Logger from the config.
func NewLogger(cfg LoggerConfig) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
