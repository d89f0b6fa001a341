package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures zerolog for the process with console output on stderr
// and installs it as the global logger.
func Setup(environment string) zerolog.Logger {
	logger := New(environment, zerolog.ConsoleWriter{Out: os.Stderr})
	log.Logger = logger
	return logger
}

// New builds a logger writing to w. Development runs log at debug level.
func New(environment string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.InfoLevel
	if environment == "development" {
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}
