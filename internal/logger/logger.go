// Package logger provides a thin wrapper around zerolog.Logger used by the
// SDK transports for request/response diagnostics.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger. The
// clients hold a *Logger and default to Nop unless debug logging is enabled.
package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// SDK to add helper constructors without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given role label (e.g. "client",
// "async-client", "webhook"). Every entry carries a "role" field and a
// timestamp, and is written to os.Stderr in JSON format.
func New(role string) *Logger {
	return NewWithWriter(role, os.Stderr)
}

// NewWithWriter is New with an explicit output writer. Used by tests to
// capture log output.
func NewWithWriter(role string, w io.Writer) *Logger {
	l := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all log output. It is the default for
// constructed clients so the SDK stays silent unless asked otherwise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
