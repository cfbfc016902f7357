package logger

import (
	"io"
	"log/slog"
	"os"
)

// NewConsoleLogger returns a Logger writing text records to w at the given level.
// A nil writer selects stdout.
func NewConsoleLogger(level string, w io.Writer) Logger {
	if w == nil {
		w = os.Stdout
	}
	return newSlogLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}
