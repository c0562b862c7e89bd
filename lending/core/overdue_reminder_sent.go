package core

import (
	"time"
)

// OverdueReminderSentEventType is the event type identifier.
const OverdueReminderSentEventType = "OverdueReminderSent"

// OverdueReminderSent represents when an overdue reminder was broadcast for an open loan.
type OverdueReminderSent struct {
	EventType     EventTypeString
	TransactionID TransactionIDString
	ItemKey       ItemKeyString
	HolderID      HolderIDString
	OverdueDays   int
	OccurredAt    OccurredAtTS
}

// BuildOverdueReminderSent creates a new OverdueReminderSent event.
func BuildOverdueReminderSent(loan LoanRecord, sentAt time.Time) OverdueReminderSent {
	return OverdueReminderSent{
		EventType:     OverdueReminderSentEventType,
		TransactionID: loan.TransactionID(),
		ItemKey:       loan.ItemKey(),
		HolderID:      loan.HolderID(),
		OverdueDays:   loan.OverdueDays(sentAt),
		OccurredAt:    ToOccurredAt(sentAt),
	}
}

// IsEventType returns the event type identifier.
func (e OverdueReminderSent) IsEventType() string {
	return OverdueReminderSentEventType
}

// HasOccurredAt returns when this event occurred.
func (e OverdueReminderSent) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e OverdueReminderSent) IsErrorEvent() bool {
	return false
}
