// Package logger builds the zerolog logger used by the fluorine CLI.
//
// Diagnostics go to stderr so that stdout stays clean for paths and JSON.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when neither the flag nor the config sets a level.
const DefaultLevel = "warn"

// ParseLevel maps a level name to a zerolog level. The empty string maps to
// DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultLevel
	}
	switch name {
	case "debug", "info", "warn", "error":
		return zerolog.ParseLevel(name)
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", name)
	}
}

// New returns a logger writing to w. Human-readable console output is used
// when color is true; otherwise one JSON object per line.
func New(w io.Writer, level zerolog.Level, color bool) zerolog.Logger {
	out := w
	if color {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Nop returns a disabled logger.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
