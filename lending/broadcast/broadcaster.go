package broadcast

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/AntonStoeckl/lending-library-go/lending/core"
)

const (
	logMsgDelivered       = "notification delivered"
	logMsgDeliveryFailed  = "notification delivery failed"
	logAttrSubscriberID   = "subscriber_id"
	logAttrNotificationID = "notification_id"
	logAttrKind           = "notification_kind"
	logAttrError          = "error"
)

// ErrSubscriberPanicked wraps the value recovered from a panicking subscriber.
var ErrSubscriberPanicked = errors.New("subscriber panicked")

// Subscriber receives notifications. Holders are the subscribers of the lending engine.
type Subscriber interface {
	SubscriberID() string
	ReceiveNotification(notification core.Notification) error
}

// Logger is satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

// DeliveryFailure describes one subscriber that did not get a notification.
type DeliveryFailure struct {
	SubscriberID string
	Err          error
}

// DeliveryReport is the outcome of one Publish call.
type DeliveryReport struct {
	Delivered int
	Failures  []DeliveryFailure
}

// Broadcaster holds an ordered set of subscribers, unique by SubscriberID.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	logger      Logger
}

// Option configures a Broadcaster.
type Option func(*Broadcaster)

// WithLogger sets the logger for delivery details (debug) and failures (warn).
func WithLogger(logger Logger) Option {
	return func(b *Broadcaster) {
		b.logger = logger
	}
}

// NewBroadcaster creates a Broadcaster without subscribers.
func NewBroadcaster(opts ...Option) *Broadcaster {
	b := &Broadcaster{}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Subscribe appends the subscriber. Subscribing an ID that is already present is a no-op.
func (b *Broadcaster) Subscribe(subscriber Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.indexOf(subscriber.SubscriberID()) >= 0 {
		return
	}

	b.subscribers = append(b.subscribers, subscriber)
}

// Unsubscribe removes the subscriber with that ID, no-op if absent.
func (b *Broadcaster) Unsubscribe(subscriberID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i := b.indexOf(subscriberID); i >= 0 {
		b.subscribers = slices.Delete(b.subscribers, i, i+1)
	}
}

// IsSubscribed reports whether a subscriber with that ID is present.
func (b *Broadcaster) IsSubscribed(subscriberID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.indexOf(subscriberID) >= 0
}

// SubscriberIDs returns the IDs of all subscribers in subscription order.
func (b *Broadcaster) SubscriberIDs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ids := make([]string, 0, len(b.subscribers))
	for _, s := range b.subscribers {
		ids = append(ids, s.SubscriberID())
	}

	return ids
}

// Publish delivers the notification to every current subscriber in subscription order
// and returns once all of them were handled.
func (b *Broadcaster) Publish(notification core.Notification) DeliveryReport {
	b.mu.RLock()
	subscribers := slices.Clone(b.subscribers)
	b.mu.RUnlock()

	report := DeliveryReport{}

	for _, subscriber := range subscribers {
		if err := deliver(subscriber, notification); err != nil {
			report.Failures = append(report.Failures, DeliveryFailure{SubscriberID: subscriber.SubscriberID(), Err: err})

			if b.logger != nil {
				b.logger.Warn(
					logMsgDeliveryFailed,
					logAttrSubscriberID, subscriber.SubscriberID(),
					logAttrNotificationID, notification.ID.String(),
					logAttrError, err.Error(),
				)
			}

			continue
		}

		report.Delivered++

		if b.logger != nil {
			b.logger.Debug(
				logMsgDelivered,
				logAttrSubscriberID, subscriber.SubscriberID(),
				logAttrNotificationID, notification.ID.String(),
				logAttrKind, string(notification.Kind),
			)
		}
	}

	return report
}

func deliver(subscriber Subscriber, notification core.Notification) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSubscriberPanicked, r)
		}
	}()

	return subscriber.ReceiveNotification(notification)
}

func (b *Broadcaster) indexOf(subscriberID string) int {
	return slices.IndexFunc(b.subscribers, func(s Subscriber) bool {
		return s.SubscriberID() == subscriberID
	})
}
