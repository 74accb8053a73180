// Package logging builds the slog logger shared by the CLI and library.
package logging

import (
	"io"
	"log/slog"
)

// Verbosity selects how much is logged.
type Verbosity int

// Verbosity levels, from quietest.
const (
	Quiet   Verbosity = iota // errors only
	Normal                   // progress at info level
	Verbose                  // debug detail
)

// Level maps a verbosity to its slog level.
func (v Verbosity) Level() slog.Level {
	switch v {
	case Quiet:
		return slog.LevelError
	case Verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger on w.
func New(w io.Writer, v Verbosity) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: v.Level()}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
