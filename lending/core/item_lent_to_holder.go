package core

import (
	"time"
)

// ItemLentToHolderEventType is the event type identifier.
const ItemLentToHolderEventType = "ItemLentToHolder"

// ItemLentToHolder represents when an item was lent to a holder.
type ItemLentToHolder struct {
	EventType     EventTypeString
	TransactionID TransactionIDString
	ItemKey       ItemKeyString
	HolderID      HolderIDString
	DueAt         time.Time
	OccurredAt    OccurredAtTS
}

// BuildItemLentToHolder creates a new ItemLentToHolder event.
func BuildItemLentToHolder(loan LoanRecord) ItemLentToHolder {
	return ItemLentToHolder{
		EventType:     ItemLentToHolderEventType,
		TransactionID: loan.TransactionID(),
		ItemKey:       loan.ItemKey(),
		HolderID:      loan.HolderID(),
		DueAt:         loan.DueAt(),
		OccurredAt:    loan.StartedAt(),
	}
}

// IsEventType returns the event type identifier.
func (e ItemLentToHolder) IsEventType() string {
	return ItemLentToHolderEventType
}

// HasOccurredAt returns when this event occurred.
func (e ItemLentToHolder) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e ItemLentToHolder) IsErrorEvent() bool {
	return false
}
