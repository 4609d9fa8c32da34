package main

import (
	"io"
	"log/slog"
)

func newLogHandler(w io.Writer, level slog.Level, jsonFormat bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if jsonFormat {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
