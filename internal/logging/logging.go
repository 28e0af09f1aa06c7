// Package logging builds the slog loggers used by quickquery and its CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Level returns the minimum level to log. Setting DEBUG in the environment
// enables debug records.
func Level() slog.Level {
	if os.Getenv("DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// New returns a logger writing JSON records to w.
func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: Level(),
	}))
}

// Noop returns a logger that discards every record.
func Noop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
