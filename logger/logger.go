// Package logger configures the process-wide zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output formats.
const (
	FormatConsole = "console" // human readable, the default
	FormatJSON    = "json"
)

// Config holds the logging options.
type Config struct {
	Format string // console or json
	Level  string // trace, debug, info, warn, error, disabled
}

// DefaultLevel is used when no level is configured. A CLI stays quiet unless
// something goes wrong.
const DefaultLevel = zerolog.WarnLevel

// New creates a logger writing to w.
func New(w io.Writer, cfg Config) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	switch strings.ToLower(cfg.Format) {
	case "", FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q, want %q or %q", cfg.Format, FormatConsole, FormatJSON)
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Setup installs a logger writing to stderr as the global zerolog logger,
// which is the one used by every package of this module.
func Setup(cfg Config) error {
	l, err := New(os.Stderr, cfg)
	if err != nil {
		return err
	}
	log.Logger = l
	return nil
}

// ParseLevel parses a level name, the empty string gives DefaultLevel.
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return DefaultLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
