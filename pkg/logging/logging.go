// Package logging configures the zerolog console logger used for
// diagnostics. Logs always go to stderr so the report on stdout stays clean.
package logging

import (
	"io"

	"github.com/rs/zerolog"
	zerologlog "github.com/rs/zerolog/log"
)

const timeFmt = "15:04:05"

// InitLogger routes the global logger to out. debug lowers the level from
// info to debug.
func InitLogger(out io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeFmt,
		NoColor:    true,
	}
	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	zerolog.TimeFieldFormat = timeFmt
	zerologlog.Logger = logger
	return logger
}
