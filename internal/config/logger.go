package config

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger returns a console logger writing to w at level. Components add
// their own "component" field on top of it.
func Logger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
