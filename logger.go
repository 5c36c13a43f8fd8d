package cursoragent

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output.
// Use this when you want silent operation with no logging overhead.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// loggerWithComponent resolves the configured logger, falling back to the
// nop logger, and tags it with the component emitting the records.
func loggerWithComponent(log *slog.Logger, component string) *slog.Logger {
	if log == nil {
		log = NopLogger()
	}

	return log.With("component", component)
}
