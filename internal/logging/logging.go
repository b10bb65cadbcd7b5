// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// Setup points the global logger at the file at path.
// With an empty path logs are discarded, since the terminal is taken over by
// the game screen. The returned function closes the log file.
func Setup(path, level string) (func() error, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(lvl)

	if path == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	log.Logger = New(f)
	return f.Close, nil
}

// New returns a human-readable logger writing to w.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}
