package core

import (
	"time"
)

// LendingFailedEventType is the event type identifier.
const LendingFailedEventType = "LendingFailed"

// LendingFailed represents when a lending operation was rejected by a business rule.
type LendingFailed struct {
	EventType   EventTypeString
	Operation   string
	HolderID    HolderIDString
	ItemKey     ItemKeyString
	FailureKind string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildLendingFailed creates a new LendingFailed event.
func BuildLendingFailed(
	operation string,
	holderID HolderIDString,
	itemKey ItemKeyString,
	failure *Failure,
	occurredAt time.Time,
) LendingFailed {
	return LendingFailed{
		EventType:   LendingFailedEventType,
		Operation:   operation,
		HolderID:    holderID,
		ItemKey:     itemKey,
		FailureKind: string(failure.Kind),
		FailureInfo: failure.Reason,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LendingFailed) IsEventType() string {
	return LendingFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LendingFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected operation.
func (e LendingFailed) IsErrorEvent() bool {
	return true
}
