package internal

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// InitLogging builds the command logger: human-readable console output on w,
// which is stderr in practice so stdout stays reserved for the confirmation
// message.
func InitLogging(w io.Writer, level string) zerolog.Logger {
	return NewLogger(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}, level)
}

// NewLogger creates a logger writing to w at level, tagged with a fresh run id.
// Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "metro-indexer").
		Str("run_id", uuid.NewString()).
		Logger()
}
