package core

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind tells what triggered a notification.
type NotificationKind string

const (
	NotificationItemLent        NotificationKind = "item_lent"
	NotificationItemReturned    NotificationKind = "item_returned"
	NotificationOverdueReminder NotificationKind = "overdue_reminder"
)

// Notification is a text message fanned out to all subscribers.
type Notification struct {
	ID          uuid.UUID
	Kind        NotificationKind
	Text        string
	PublishedAt time.Time
}

// NewNotification creates a notification with a fresh random ID.
func NewNotification(kind NotificationKind, text string, publishedAt time.Time) Notification {
	return Notification{
		ID:          uuid.New(),
		Kind:        kind,
		Text:        text,
		PublishedAt: ToOccurredAt(publishedAt),
	}
}
