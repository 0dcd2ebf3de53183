// Package logging builds the leveled logger shared by training and
// evaluation components. Components never reach for a process-global
// logger; the handle constructed here is passed in explicitly.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Config controls logger construction.
type Config struct {
	// LogPath, when set, mirrors every line to the named file in
	// addition to the console sink.
	LogPath string
	// Writer overrides the console sink. Defaults to os.Stderr.
	Writer io.Writer
	// Level defaults to debug, matching the verbosity the training
	// pipeline expects.
	Level slog.Leveler
}

// Configure builds a text logger at debug level. The returned close
// function releases the mirror file and is a no-op when no LogPath was
// given.
func Configure(cfg Config) (*slog.Logger, func() error, error) {
	console := cfg.Writer
	if console == nil {
		console = os.Stderr
	}
	level := cfg.Level
	if level == nil {
		level = slog.LevelDebug
	}

	sink := console
	closeFn := func() error { return nil }
	if cfg.LogPath != "" {
		file, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		sink = io.MultiWriter(console, file)
		closeFn = file.Close
	}

	handler := slog.NewTextHandler(sink, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				a.Value = slog.StringValue(a.Value.Time().Format(timeLayout))
			}
			return a
		},
	})
	return slog.New(handler), closeFn, nil
}

// timeLayout mirrors the '02-Jan-06 15:04:05' stamp used across run logs.
const timeLayout = "02-Jan-06 15:04:05"

// NewTestLogger returns a debug-level logger writing to w, for capturing
// sinks in tests.
func NewTestLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
