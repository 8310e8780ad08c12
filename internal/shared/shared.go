// package shared defines shared helpers
package shared

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger creates a new [log.Logger] instance with the specified [io.Writer], with timestamps and caller reporting enabled.
//
// The writer defaults to [os.Stderr]. SPOTMIX_LOG_LEVEL overrides the default
// level; unparseable values are ignored.
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true}
	logger := log.NewWithOptions(w, opts)

	if raw := os.Getenv("SPOTMIX_LOG_LEVEL"); raw != "" {
		if level, err := log.ParseLevel(raw); err == nil {
			SetLogLevel(logger, level)
		}
	}

	return logger
}

// NewFileLogger creates a [log.Logger] writing to a rolling file at path.
//
// Used by the TUI so log output never interferes with terminal rendering.
func NewFileLogger(path string) *log.Logger {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	}
	return NewLogger(w)
}

// WithLogger creates a child [log.Logger] with the specified key-value pairs added to all log entries.
func WithLogger(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// SetLogLevel sets the [log.Level] for the given [log.Logger].
func SetLogLevel(l *log.Logger, ll log.Level) {
	l.SetLevel(ll)
}

// GenerateID generates a new v4 [uuid.UUID] as a string
func GenerateID() string {
	return uuid.New().String()
}
