package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewLogger builds the process logger from the logging config. Unknown
// levels fall back to info, unknown formats to JSON. The result is also
// installed as zerolog's package-level logger so failures before wiring
// completes share the same output.
func NewLogger(cfg LoggingConfig) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.New(logWriter(cfg.Format)).
		Level(logLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
	log.Logger = logger
	return logger
}

func logLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// logWriter picks the output encoding: "console" gives the human-readable
// development writer, anything else stays line-delimited JSON.
func logWriter(format string) io.Writer {
	switch strings.ToLower(format) {
	case "console":
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	default:
		return os.Stdout
	}
}
