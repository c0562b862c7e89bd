package core

import (
	"slices"
)

// LimitPolicy is the borrowing-limit variant of a holder.
type LimitPolicy int

const (
	// PolicyCapped3 allows at most 3 items at the same time.
	PolicyCapped3 LimitPolicy = iota + 1

	// PolicyCapped5 allows at most 5 items at the same time.
	PolicyCapped5
)

// Max returns the borrowing cap of the policy, 0 for an unknown variant.
func (p LimitPolicy) Max() int {
	switch p {
	case PolicyCapped3:
		return 3
	case PolicyCapped5:
		return 5
	default:
		return 0
	}
}

func (p LimitPolicy) String() string {
	switch p {
	case PolicyCapped3:
		return "capped-3"
	case PolicyCapped5:
		return "capped-5"
	default:
		return "unknown"
	}
}

// Holder is a borrowing party. Its holdings are keyed by item key, in borrow order.
//
// Once registered, holdings are only changed by the lending engine.
type Holder struct {
	ID             HolderIDString
	DisplayName    string
	Contact        string
	Category       HolderCategory
	CategoryDetail string
	Policy         LimitPolicy

	heldItemKeys []ItemKeyString
	inbox        []Notification
}

// NewHolder creates a holder with empty holdings.
func NewHolder(id HolderIDString, displayName string, contact string, policy LimitPolicy) *Holder {
	return &Holder{
		ID:           id,
		DisplayName:  displayName,
		Contact:      contact,
		Policy:       policy,
		heldItemKeys: make([]ItemKeyString, 0, policy.Max()),
	}
}

// Limit returns the borrowing cap determined by the holder's policy.
func (h *Holder) Limit() int {
	return h.Policy.Max()
}

// CanBorrow is true while the holder holds fewer items than its limit.
func (h *Holder) CanBorrow() bool {
	return len(h.heldItemKeys) < h.Limit()
}

// RecordBorrow adds the item key to the holdings.
// It does nothing if the holder cannot borrow or already holds the key.
func (h *Holder) RecordBorrow(itemKey ItemKeyString) {
	if !h.CanBorrow() || slices.Contains(h.heldItemKeys, itemKey) {
		return
	}

	h.heldItemKeys = append(h.heldItemKeys, itemKey)
}

// RecordReturn removes the item key from the holdings, no-op if it is not held.
func (h *Holder) RecordReturn(itemKey ItemKeyString) {
	if i := slices.Index(h.heldItemKeys, itemKey); i >= 0 {
		h.heldItemKeys = slices.Delete(h.heldItemKeys, i, i+1)
	}
}

// HeldItemKeys returns a copy of the currently held item keys, in borrow order.
func (h *Holder) HeldItemKeys() []ItemKeyString {
	return slices.Clone(h.heldItemKeys)
}

// HeldCount returns how many items the holder currently holds.
func (h *Holder) HeldCount() int {
	return len(h.heldItemKeys)
}

// SubscriberID identifies the holder towards the broadcaster.
func (h *Holder) SubscriberID() string {
	return h.ID
}

// ReceiveNotification records the notification in the holder's inbox.
func (h *Holder) ReceiveNotification(notification Notification) error {
	h.inbox = append(h.inbox, notification)

	return nil
}

// Inbox returns a copy of all notifications received so far, oldest first.
func (h *Holder) Inbox() []Notification {
	return slices.Clone(h.inbox)
}

// Snapshot returns a detached copy of the holder.
func (h *Holder) Snapshot() Holder {
	snapshot := *h
	snapshot.heldItemKeys = slices.Clone(h.heldItemKeys)
	snapshot.inbox = slices.Clone(h.inbox)

	return snapshot
}
