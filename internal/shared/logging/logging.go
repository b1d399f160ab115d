package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// ParseLevel maps a config value to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// New builds a logger that writes text to out at level and mirrors errors
// as JSON to errOut.
func New(out, errOut io.Writer, level slog.Level) *slog.Logger {
	textHandler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	})
	jsonHandler := slog.NewJSONHandler(errOut, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	// Fanout sends every record to both handlers
	return slog.New(slogmulti.Fanout(textHandler, jsonHandler))
}

// Setup installs the default process logger.
func Setup(level string) *slog.Logger {
	logger := New(os.Stdout, os.Stderr, ParseLevel(level))
	slog.SetDefault(logger)
	return logger
}
