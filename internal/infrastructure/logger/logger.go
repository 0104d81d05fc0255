// Package logger wraps zerolog with the fields every binary in this module
// attaches: the service name, and per component or per request context.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects level, output format and the service tag.
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json, console
	ServiceName string
	Caller      bool
}

// Logger is a zerolog.Logger with helpers for the fields used across
// the client and the stub API.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stderr. Stdout is left to command output.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput creates a Logger writing to out.
func NewWithOutput(cfg Config, out io.Writer) *Logger {
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zctx := zerolog.New(out).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp()
	if cfg.ServiceName != "" {
		zctx = zctx.Str("service", cfg.ServiceName)
	}
	if cfg.Caller {
		zctx = zctx.Caller()
	}

	return &Logger{Logger: zctx.Logger()}
}

// parseLevel falls back to info for empty or unknown levels.
func parseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// WithField returns a child logger carrying one extra string field.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// WithRequestID tags entries with the X-Request-ID of a call.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithField("request_id", requestID)
}

// WithComponent tags entries with the owning component
// (session, directory, api, storage, catalog).
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// Nop returns a disabled logger.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// OrNop returns l, or a disabled logger when l is nil.
func OrNop(l *Logger) *Logger {
	if l == nil {
		return Nop()
	}
	return l
}
