package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fespace-studio/fespace/config"
)

// Log is the application-wide logger instance
var Log zerolog.Logger

func init() {
	Log = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// Init configures the global logger from application configuration.
// Outside production the output is the human-readable console writer.
func Init(cfg *config.Config) {
	level := parseLevel(cfg.LogLevel)

	var log zerolog.Logger
	if cfg.IsProduction() {
		log = zerolog.New(os.Stderr)
	} else {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	Log = log.Level(level).With().Timestamp().Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
