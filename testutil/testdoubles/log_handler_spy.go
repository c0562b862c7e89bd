package testdoubles

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// LogHandlerSpy is a slog.Handler implementation that captures log records for testing.
type LogHandlerSpy struct {
	records     []slog.Record
	mu          sync.Mutex
	logToStdout bool
}

// NewLogHandlerSpy creates a new LogHandlerSpy
// Switchable to log to stdout, which can be useful for debugging tests by seeing the actual log output.
func NewLogHandlerSpy(logToStdOut bool) *LogHandlerSpy {
	return &LogHandlerSpy{
		records:     make([]slog.Record, 0),
		logToStdout: logToStdOut,
	}
}

// Handle implements slog.Handler interface.
func (s *LogHandlerSpy) Handle(ctx context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record.Clone())

	if s.logToStdout {
		jsonHandler := slog.NewJSONHandler(os.Stdout, nil)
		_ = jsonHandler.Handle(ctx, record)
	}

	return nil
}

// Enabled implements slog.Handler interface.
func (s *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true // Always enabled for testing
}

// WithAttrs implements slog.Handler interface.
func (s *LogHandlerSpy) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

// WithGroup implements slog.Handler interface.
func (s *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return s
}

// GetRecords returns a copy of all captured log records.
func (s *LogHandlerSpy) GetRecords() []slog.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]slog.Record, len(s.records))
	copy(records, s.records)

	return records
}

// HasDebugLog checks if a debug log with the given message was recorded.
func (s *LogHandlerSpy) HasDebugLog(msg string) bool {
	return s.hasLog(slog.LevelDebug, msg)
}

// HasInfoLog checks if an info log with the given message was recorded.
func (s *LogHandlerSpy) HasInfoLog(msg string) bool {
	return s.hasLog(slog.LevelInfo, msg)
}

// HasWarnLog checks if a warn log with the given message was recorded.
func (s *LogHandlerSpy) HasWarnLog(msg string) bool {
	return s.hasLog(slog.LevelWarn, msg)
}

// HasErrorLog checks if an error log with the given message was recorded.
func (s *LogHandlerSpy) HasErrorLog(msg string) bool {
	return s.hasLog(slog.LevelError, msg)
}

// AttrOf returns the value of attribute key in the first record with the given message.
func (s *LogHandlerSpy) AttrOf(msg string, key string) (string, bool) {
	for _, record := range s.GetRecords() {
		if record.Message != msg {
			continue
		}

		var value string
		var found bool

		record.Attrs(func(attr slog.Attr) bool {
			if attr.Key == key {
				value, found = attr.Value.String(), true
				return false
			}

			return true
		})

		return value, found
	}

	return "", false
}

// Reset clears all captured records.
func (s *LogHandlerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.records[:0]
}

func (s *LogHandlerSpy) hasLog(level slog.Level, msg string) bool {
	for _, record := range s.GetRecords() {
		if record.Level == level && record.Message == msg {
			return true
		}
	}

	return false
}
