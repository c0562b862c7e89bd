package core

import (
	"time"
)

const (
	// LoanPeriod is the fixed grace period between start and due date of every loan.
	LoanPeriod = 14 * Day

	// Day is the unit of all lateness calculations.
	Day = 24 * time.Hour
)

// LoanStatus is the lifecycle state of a LoanRecord.
type LoanStatus string

const (
	LoanOpen   LoanStatus = "OPEN"
	LoanClosed LoanStatus = "CLOSED"
)

// LoanRecord is one borrow-to-return transaction of the ledger.
// It is created OPEN and transitions to CLOSED exactly once.
type LoanRecord struct {
	transactionID TransactionIDString
	holderID      HolderIDString
	itemKey       ItemKeyString
	startedAt     time.Time
	dueAt         time.Time
	completedAt   time.Time
	closed        bool
}

// OpenLoanRecord creates an OPEN record due LoanPeriod after startedAt.
func OpenLoanRecord(
	transactionID TransactionIDString,
	holderID HolderIDString,
	itemKey ItemKeyString,
	startedAt time.Time,
) *LoanRecord {

	startedAt = ToOccurredAt(startedAt)

	return &LoanRecord{
		transactionID: transactionID,
		holderID:      holderID,
		itemKey:       itemKey,
		startedAt:     startedAt,
		dueAt:         startedAt.Add(LoanPeriod),
	}
}

func (l LoanRecord) TransactionID() TransactionIDString {
	return l.transactionID
}

func (l LoanRecord) HolderID() HolderIDString {
	return l.holderID
}

func (l LoanRecord) ItemKey() ItemKeyString {
	return l.itemKey
}

func (l LoanRecord) StartedAt() time.Time {
	return l.startedAt
}

func (l LoanRecord) DueAt() time.Time {
	return l.dueAt
}

// CompletedAt returns the return timestamp and true once the record is closed.
func (l LoanRecord) CompletedAt() (time.Time, bool) {
	return l.completedAt, l.closed
}

func (l LoanRecord) IsOpen() bool {
	return !l.closed
}

func (l LoanRecord) Status() LoanStatus {
	if l.closed {
		return LoanClosed
	}

	return LoanOpen
}

// Close completes the loan at the given time. A closed record can not be closed again.
func (l *LoanRecord) Close(at time.Time) error {
	if l.closed {
		return ErrLoanAlreadyClosed
	}

	l.completedAt = ToOccurredAt(at)
	l.closed = true

	return nil
}

// IsOverdue compares the reference time (open) or the return time (closed) against the due date.
func (l LoanRecord) IsOverdue(reference time.Time) bool {
	return l.effectiveTime(reference).After(l.dueAt)
}

// OverdueDays is 0 unless overdue, otherwise the started days past the due date.
func (l LoanRecord) OverdueDays(reference time.Time) int {
	if !l.IsOverdue(reference) {
		return 0
	}

	return ceilDays(l.effectiveTime(reference).Sub(l.dueAt))
}

// DaysRemaining is the number of started days until the due date, negative once it passed.
func (l LoanRecord) DaysRemaining(reference time.Time) int {
	return ceilDays(l.dueAt.Sub(reference))
}

func (l LoanRecord) effectiveTime(reference time.Time) time.Time {
	if l.closed {
		return l.completedAt
	}

	return reference
}

// ceilDays rounds a duration up to whole days. Integer division truncates toward zero,
// which already is the ceiling for negative durations.
func ceilDays(d time.Duration) int {
	days := d / Day
	if d > 0 && d%Day != 0 {
		days++
	}

	return int(days)
}
