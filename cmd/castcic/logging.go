package main

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// newLogger builds the process-wide logger for a CLI invocation: a
// human-readable text handler when stderr is an interactive terminal,
// JSON when stderr is redirected to a file or pipe (logs are more likely to be
// consumed by another tool at that point).
func newLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
