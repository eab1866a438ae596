package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New builds the application logger. format "json" writes one JSON object per
// line; anything else uses zerolog's human readable console writer. An
// unparsable level falls back to info.
func New(w io.Writer, app, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(out).
		With().Timestamp().Str("app", app).Logger().
		Level(lvl)
}
