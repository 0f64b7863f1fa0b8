package main

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger returns a text logger on w. Warn by default, Debug when verbose,
// Error only when quiet. Quiet wins over verbose.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// printfLogger adapts l to the printf-style loggers some libraries expect.
func printfLogger(l *slog.Logger) func(string, ...interface{}) {
	return func(format string, args ...interface{}) {
		l.Debug(fmt.Sprintf(format, args...))
	}
}
