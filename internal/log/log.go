// Package log configures structured logging for lsmodels using log/slog.
package log

import (
	"io"
	"log/slog"
)

// Level maps the verbosity flags to a slog level. Quiet wins over verbose.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Setup installs a slog.TextHandler writing to w as the default logger.
// w should be stderr; stdout is reserved for command output.
func Setup(w io.Writer, verbose, quiet bool) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbose, quiet),
	})
	slog.SetDefault(slog.New(handler))
}
