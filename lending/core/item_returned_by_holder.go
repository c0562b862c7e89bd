package core

import (
	"time"
)

// ItemReturnedByHolderEventType is the event type identifier.
const ItemReturnedByHolderEventType = "ItemReturnedByHolder"

// ItemReturnedByHolder represents when a holder returned an item.
type ItemReturnedByHolder struct {
	EventType     EventTypeString
	TransactionID TransactionIDString
	ItemKey       ItemKeyString
	HolderID      HolderIDString
	OverdueDays   int
	OccurredAt    OccurredAtTS
}

// BuildItemReturnedByHolder creates a new ItemReturnedByHolder event.
func BuildItemReturnedByHolder(loan LoanRecord, returnedAt time.Time) ItemReturnedByHolder {
	return ItemReturnedByHolder{
		EventType:     ItemReturnedByHolderEventType,
		TransactionID: loan.TransactionID(),
		ItemKey:       loan.ItemKey(),
		HolderID:      loan.HolderID(),
		OverdueDays:   loan.OverdueDays(returnedAt),
		OccurredAt:    ToOccurredAt(returnedAt),
	}
}

// IsEventType returns the event type identifier.
func (e ItemReturnedByHolder) IsEventType() string {
	return ItemReturnedByHolderEventType
}

// HasOccurredAt returns when this event occurred.
func (e ItemReturnedByHolder) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e ItemReturnedByHolder) IsErrorEvent() bool {
	return false
}
