package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON logger writing to stdout at Info level. Extractors pull
// request-scoped attributes (request ID, resolved language) out of the
// context on every log call.
func New(extractors ...ContextExtractor) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(Decorate(handler, extractors...))
}

// NewDiscard creates a logger that drops everything. Handy as a default when
// logging is not configured, and in tests.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
