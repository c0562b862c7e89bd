package core

import (
	"time"
)

// HolderRegisteredEventType is the event type identifier.
const HolderRegisteredEventType = "HolderRegistered"

// HolderRegistered represents when a holder was registered with the engine.
type HolderRegistered struct {
	EventType   EventTypeString
	HolderID    HolderIDString
	DisplayName string
	Category    string
	Policy      string
	OccurredAt  OccurredAtTS
}

// BuildHolderRegistered creates a new HolderRegistered event.
func BuildHolderRegistered(holder Holder, occurredAt time.Time) HolderRegistered {
	return HolderRegistered{
		EventType:   HolderRegisteredEventType,
		HolderID:    holder.ID,
		DisplayName: holder.DisplayName,
		Category:    string(holder.Category),
		Policy:      holder.Policy.String(),
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e HolderRegistered) IsEventType() string {
	return HolderRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e HolderRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e HolderRegistered) IsErrorEvent() bool {
	return false
}
