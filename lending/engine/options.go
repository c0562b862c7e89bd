package engine

import (
	"errors"

	"github.com/AntonStoeckl/lending-library-go/journal"
	"github.com/AntonStoeckl/lending-library-go/lending/core"
	"github.com/AntonStoeckl/lending-library-go/lending/shell"
)

var (
	ErrNilClock            = errors.New("clock must not be nil")
	ErrNilLogger           = errors.New("logger must not be nil")
	ErrNilMetricsCollector = errors.New("metrics collector must not be nil")
	ErrNilJournal          = errors.New("journal must not be nil")
	ErrNoJournal           = errors.New("engine has no journal configured")
	ErrNilObserver         = errors.New("observer must not be nil")
)

// Journal is the event journal the engine records its domain events in. *journal.Memory satisfies it.
type Journal interface {
	Append(storableEvents ...journal.StorableEvent) error
	Query(filter journal.Filter) (journal.StorableEvents, journal.MaxSequenceNumberUint, error)
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine) error

// WithClock replaces the wall clock, which makes lateness deterministic in tests and demos.
func WithClock(clock core.Clock) Option {
	return func(e *Engine) error {
		if clock == nil {
			return ErrNilClock
		}

		e.clock = clock

		return nil
	}
}

// WithLogger sets the logger for the engine and its broadcaster.
//
// Info: completed operations. Warn: rejections and failed deliveries. Error: journal failures.
func WithLogger(logger shell.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			return ErrNilLogger
		}

		e.logger = logger

		return nil
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(collector shell.MetricsCollector) Option {
	return func(e *Engine) error {
		if collector == nil {
			return ErrNilMetricsCollector
		}

		e.metrics = collector

		return nil
	}
}

// WithJournal makes the engine record a domain event for every state change and rejection.
func WithJournal(j Journal) Option {
	return func(e *Engine) error {
		if j == nil {
			return ErrNilJournal
		}

		e.journal = j

		return nil
	}
}
