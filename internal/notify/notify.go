// Package notify delivers user-facing notifications raised by the stores and
// the REST client. Sinks must be safe for concurrent use.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/flight-search/travel-booking-client/internal/infrastructure/logger"
)

// Level is the severity of a notification.
type Level string

// Notification levels.
const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Sink receives notifications.
type Sink interface {
	Success(message string)
	Error(message string)
	Warning(message string)
	Info(message string)
}

// Notification is one recorded message.
type Notification struct {
	Level   Level
	Message string
}

// LogSink writes notifications to a structured logger.
type LogSink struct {
	log *logger.Logger
}

// NewLogSink creates a LogSink. A nil logger discards everything.
func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{log: logger.OrNop(log).WithComponent("notify")}
}

func (s *LogSink) Success(message string) {
	s.log.Info().Str("level_hint", string(LevelSuccess)).Msg(message)
}

func (s *LogSink) Error(message string) {
	s.log.Error().Msg(message)
}

func (s *LogSink) Warning(message string) {
	s.log.Warn().Msg(message)
}

func (s *LogSink) Info(message string) {
	s.log.Info().Msg(message)
}

// WriterSink prints one "[level] message" line per notification. The
// command line tool uses it to show toasts on stderr.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a WriterSink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Success(message string) { s.print(LevelSuccess, message) }
func (s *WriterSink) Error(message string)   { s.print(LevelError, message) }
func (s *WriterSink) Warning(message string) { s.print(LevelWarning, message) }
func (s *WriterSink) Info(message string)    { s.print(LevelInfo, message) }

func (s *WriterSink) print(level Level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "[%s] %s\n", level, message)
}

// Recorder keeps every notification in memory, in arrival order.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Success(message string) { r.add(LevelSuccess, message) }
func (r *Recorder) Error(message string)   { r.add(LevelError, message) }
func (r *Recorder) Warning(message string) { r.add(LevelWarning, message) }
func (r *Recorder) Info(message string)    { r.add(LevelInfo, message) }

func (r *Recorder) add(level Level, message string) {
	r.mu.Lock()
	r.items = append(r.items, Notification{Level: level, Message: message})
	r.mu.Unlock()
}

// All returns a copy of every recorded notification.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Messages returns the messages recorded at level.
func (r *Recorder) Messages(level Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, n := range r.items {
		if n.Level == level {
			out = append(out, n.Message)
		}
	}
	return out
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.items = nil
	r.mu.Unlock()
}

// Multi fans every notification out to all sinks in order.
type Multi []Sink

func (m Multi) Success(message string) {
	for _, s := range m {
		s.Success(message)
	}
}

func (m Multi) Error(message string) {
	for _, s := range m {
		s.Error(message)
	}
}

func (m Multi) Warning(message string) {
	for _, s := range m {
		s.Warning(message)
	}
}

func (m Multi) Info(message string) {
	for _, s := range m {
		s.Info(message)
	}
}

// Nop discards notifications.
type Nop struct{}

func (Nop) Success(string) {}
func (Nop) Error(string)   {}
func (Nop) Warning(string) {}
func (Nop) Info(string)    {}

// OrNop returns s, or Nop when s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop{}
	}
	return s
}

var (
	_ Sink = (*LogSink)(nil)
	_ Sink = (*Recorder)(nil)
	_ Sink = (*WriterSink)(nil)
	_ Sink = Multi(nil)
	_ Sink = Nop{}
)
