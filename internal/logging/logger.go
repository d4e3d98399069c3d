// Package logging builds the application logger. It is constructed once in
// cmd and handed to the components that log; nothing here is global.
package logging

import (
	"io"
	"log/slog"
)

// New creates a text logger writing to w, normally stderr so log lines stay
// out of the frame output. Verbose lowers the level to debug. The "error" key
// is shortened to "err".
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
