package journal

import (
	"sync"

	jsoniter "github.com/json-iterator/go"
)

const (
	logMsgEventsAppended = "journal events appended"
	logMsgQueryCompleted = "journal query completed"
	logAttrEventType     = "event_type"
	logAttrEventCount    = "event_count"
	logAttrMaxSequence   = "max_sequence"
)

// Memory is an append-only journal held in process memory.
// It is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	events StorableEvents
	logger Logger
}

// Option defines a functional option for configuring Memory.
type Option func(*Memory) error

// WithLogger sets the logger for the journal.
//
// Debug level: every appended event type and every query result count.
func WithLogger(logger Logger) Option {
	return func(m *Memory) error {
		if logger == nil {
			return ErrNilLogger
		}

		m.logger = logger

		return nil
	}
}

// NewMemory creates an empty in-memory journal with optional configuration.
func NewMemory(options ...Option) (*Memory, error) {
	m := &Memory{
		events: make(StorableEvents, 0),
	}

	for _, option := range options {
		if err := option(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Append adds the events to the end of the journal and assigns their sequence numbers,
// starting at 1 for the first event ever appended.
func (m *Memory) Append(storableEvents ...StorableEvent) error {
	if len(storableEvents) == 0 {
		return ErrEmptyEventsSupplied
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, event := range storableEvents {
		event.SequenceNumber = SequenceNumberUint(len(m.events) + 1)
		m.events = append(m.events, event)

		if m.logger != nil {
			m.logger.Debug(logMsgEventsAppended, logAttrEventType, event.EventType, logAttrMaxSequence, event.SequenceNumber)
		}
	}

	return nil
}

// Query returns all events matching the filter in append order,
// as well as the highest sequence number among them (0 if nothing matched).
func (m *Memory) Query(filter Filter) (StorableEvents, MaxSequenceNumberUint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make(StorableEvents, 0)
	var maxSequenceNumber MaxSequenceNumberUint

	for _, event := range m.events {
		if !filter.accepts(event) {
			continue
		}

		matched = append(matched, event)
		maxSequenceNumber = event.SequenceNumber
	}

	if m.logger != nil {
		m.logger.Debug(logMsgQueryCompleted, logAttrEventCount, len(matched), logAttrMaxSequence, maxSequenceNumber)
	}

	return matched, maxSequenceNumber, nil
}

// Len returns the number of events in the journal.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.events)
}

// holdsFor compares the payload field rendered as string, so numeric fields match their decimal form.
func (p FilterPredicate) holdsFor(payloadJSON []byte) bool {
	value := jsoniter.Get(payloadJSON, p.key)
	if value.ValueType() == jsoniter.InvalidValue {
		return false
	}

	return value.ToString() == p.val
}
