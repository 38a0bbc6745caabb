package logutil

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

func ParseZerologLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger returns a human-readable logger. Diagnostics go to w so that
// standard output stays reserved for the probe result.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{ //nolint:exhaustruct
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}).
		Level(ParseZerologLevel(level)).
		With().
		Timestamp().
		Logger()
}
