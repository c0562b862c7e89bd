package core

import (
	"time"
)

// ItemAddedToCatalogEventType is the event type identifier.
const ItemAddedToCatalogEventType = "ItemAddedToCatalog"

// ItemAddedToCatalog represents when an item was added to the catalog (or replaced an available one).
type ItemAddedToCatalog struct {
	EventType  EventTypeString
	ItemKey    ItemKeyString
	Title      string
	Author     string
	Category   string
	OccurredAt OccurredAtTS
}

// BuildItemAddedToCatalog creates a new ItemAddedToCatalog event.
func BuildItemAddedToCatalog(item CatalogItem, occurredAt time.Time) ItemAddedToCatalog {
	return ItemAddedToCatalog{
		EventType:  ItemAddedToCatalogEventType,
		ItemKey:    item.Key,
		Title:      item.Title,
		Author:     item.Author,
		Category:   item.Category,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ItemAddedToCatalog) IsEventType() string {
	return ItemAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e ItemAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e ItemAddedToCatalog) IsErrorEvent() bool {
	return false
}
