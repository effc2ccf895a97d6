// Package logger configures the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup returns a JSON slog.Logger writing to w.
func Setup(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

// SetupDefault installs a JSON logger as the slog default. A nil writer
// means os.Stdout.
func SetupDefault(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	slog.SetDefault(Setup(w))
}
