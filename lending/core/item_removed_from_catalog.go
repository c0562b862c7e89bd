package core

import (
	"time"
)

// ItemRemovedFromCatalogEventType is the event type identifier.
const ItemRemovedFromCatalogEventType = "ItemRemovedFromCatalog"

// ItemRemovedFromCatalog represents when an item was removed from the catalog.
type ItemRemovedFromCatalog struct {
	EventType  EventTypeString
	ItemKey    ItemKeyString
	OccurredAt OccurredAtTS
}

// BuildItemRemovedFromCatalog creates a new ItemRemovedFromCatalog event.
func BuildItemRemovedFromCatalog(itemKey ItemKeyString, occurredAt time.Time) ItemRemovedFromCatalog {
	return ItemRemovedFromCatalog{
		EventType:  ItemRemovedFromCatalogEventType,
		ItemKey:    itemKey,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ItemRemovedFromCatalog) IsEventType() string {
	return ItemRemovedFromCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e ItemRemovedFromCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e ItemRemovedFromCatalog) IsErrorEvent() bool {
	return false
}
