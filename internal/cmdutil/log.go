package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
)

// NewLogger returns a text slog logger for diagnostics on w. quiet keeps
// only errors; verbose adds debug records.
func NewLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Warnf logs a formatted warning.
func Warnf(log *slog.Logger, format string, a ...any) {
	log.Warn(fmt.Sprintf(format, a...))
}
