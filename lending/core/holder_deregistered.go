package core

import (
	"time"
)

// HolderDeregisteredEventType is the event type identifier.
const HolderDeregisteredEventType = "HolderDeregistered"

// HolderDeregistered represents when a holder was removed from the engine.
type HolderDeregistered struct {
	EventType  EventTypeString
	HolderID   HolderIDString
	OccurredAt OccurredAtTS
}

// BuildHolderDeregistered creates a new HolderDeregistered event.
func BuildHolderDeregistered(holderID HolderIDString, occurredAt time.Time) HolderDeregistered {
	return HolderDeregistered{
		EventType:  HolderDeregisteredEventType,
		HolderID:   holderID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e HolderDeregistered) IsEventType() string {
	return HolderDeregisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e HolderDeregistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e HolderDeregistered) IsErrorEvent() bool {
	return false
}
