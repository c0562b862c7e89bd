package testdoubles

import (
	"errors"
	"sync"

	"github.com/AntonStoeckl/lending-library-go/lending/core"
)

// ErrDeliveryRefused is returned by a FaultySubscriber in error mode.
var ErrDeliveryRefused = errors.New("delivery refused by subscriber")

// RecordingSubscriber records every notification it receives and appends its ID to a shared log,
// which allows asserting delivery order across several subscribers.
type RecordingSubscriber struct {
	id       string
	mu       sync.Mutex
	received []core.Notification
	order    *DeliveryLog
}

// DeliveryLog is a shared, ordered list of subscriber IDs in the order they received notifications.
type DeliveryLog struct {
	mu  sync.Mutex
	ids []string
}

// IDs returns a copy of the logged subscriber IDs.
func (l *DeliveryLog) IDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.ids...)
}

func (l *DeliveryLog) add(id string) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.ids = append(l.ids, id)
}

// NewRecordingSubscriber creates a RecordingSubscriber; order may be nil.
func NewRecordingSubscriber(id string, order *DeliveryLog) *RecordingSubscriber {
	return &RecordingSubscriber{id: id, order: order}
}

func (s *RecordingSubscriber) SubscriberID() string {
	return s.id
}

func (s *RecordingSubscriber) ReceiveNotification(notification core.Notification) error {
	s.mu.Lock()
	s.received = append(s.received, notification)
	s.mu.Unlock()

	s.order.add(s.id)

	return nil
}

// Received returns a copy of all received notifications.
func (s *RecordingSubscriber) Received() []core.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]core.Notification(nil), s.received...)
}

// FaultySubscriber fails every delivery, either with ErrDeliveryRefused or by panicking.
type FaultySubscriber struct {
	id       string
	panics   bool
	mu       sync.Mutex
	attempts int
}

// NewErroringSubscriber creates a FaultySubscriber that returns ErrDeliveryRefused.
func NewErroringSubscriber(id string) *FaultySubscriber {
	return &FaultySubscriber{id: id}
}

// NewPanickingSubscriber creates a FaultySubscriber that panics on delivery.
func NewPanickingSubscriber(id string) *FaultySubscriber {
	return &FaultySubscriber{id: id, panics: true}
}

func (s *FaultySubscriber) SubscriberID() string {
	return s.id
}

func (s *FaultySubscriber) ReceiveNotification(_ core.Notification) error {
	s.mu.Lock()
	s.attempts++
	s.mu.Unlock()

	if s.panics {
		panic("subscriber " + s.id + " exploded")
	}

	return ErrDeliveryRefused
}

// Attempts returns how often a delivery was attempted.
func (s *FaultySubscriber) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.attempts
}
