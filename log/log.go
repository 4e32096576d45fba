package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a console logger tagged with the given component name.
// The level defaults to info and can be overridden with the LOG_LEVEL
// environment variable.
func NewLogger(component string) zerolog.Logger {
	level := zerolog.InfoLevel
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}
