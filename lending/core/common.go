package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// HolderIDString represents a holder identifier
type HolderIDString = string

// ItemKeyString represents a catalog item key (e.g. an ISBN)
type ItemKeyString = string

// TransactionIDString represents a loan transaction identifier
type TransactionIDString = string

// EventTypeString represents a domain event type
type EventTypeString = string

// OccurredAtTS represents when an event occurred
type OccurredAtTS = time.Time

// Clock supplies the current time.
type Clock func() time.Time

// SystemClock returns the wall-clock time.
func SystemClock() time.Time {
	return time.Now()
}

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
