// Package logger wraps zerolog construction so every component logs the
// same JSON shape to stdout.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the application logger at the requested level. Unknown level
// names fall back to info.
func New(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(parsed).
		With().
		Timestamp().
		Str("app", "labsite").
		Logger()
}

// Nop returns a logger that discards everything; used by tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
