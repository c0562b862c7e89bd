package engine

import (
	"fmt"
	"strconv"
	"time"

	"github.com/AntonStoeckl/lending-library-go/lending/core"
	"github.com/AntonStoeckl/lending-library-go/lending/shell"
)

// Borrow lends the item to the holder and returns the new OPEN loan record.
//
// Checks run in this order: holder exists, item exists, item is available, holder is below its limit.
// The first failing check rejects the operation and nothing is changed.
func (e *Engine) Borrow(holderID core.HolderIDString, itemKey core.ItemKeyString) (core.LoanRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()

	holder, item, failure := e.resolve(holderID, itemKey)
	if failure != nil {
		return core.LoanRecord{}, e.reject(opBorrow, start, holderID, itemKey, failure)
	}

	if !item.Available {
		return core.LoanRecord{}, e.reject(opBorrow, start, holderID, itemKey, core.NewFailure(
			core.ItemUnavailable,
			fmt.Sprintf("'%s' is currently lent to %s", item.Title, item.HeldBy),
		))
	}

	if !holder.CanBorrow() {
		return core.LoanRecord{}, e.reject(opBorrow, start, holderID, itemKey, core.NewFailure(
			core.BorrowLimitReached,
			fmt.Sprintf("%s already holds %d of %d items", holder.DisplayName, holder.HeldCount(), holder.Limit()),
		))
	}

	now := e.now()
	loan := core.OpenLoanRecord(e.nextTransactionID(), holderID, itemKey, now)
	e.ledger = append(e.ledger, loan)
	e.openLoans++

	item.MarkLoaned(holderID)
	holder.RecordBorrow(itemKey)

	e.record(core.BuildItemLentToHolder(*loan))
	e.broadcast(core.NewNotification(core.NotificationItemLent, lentMessage(holder, item, *loan), now))
	e.recordOpenLoans()
	e.succeed(opBorrow, start, logAttrHolderID, holderID, logAttrItemKey, itemKey, logAttrTransactionID, loan.TransactionID())

	return *loan, nil
}

// ReturnItem closes the most recent OPEN loan of the item by the holder and returns the closed record.
func (e *Engine) ReturnItem(holderID core.HolderIDString, itemKey core.ItemKeyString) (core.LoanRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()

	holder, item, failure := e.resolve(holderID, itemKey)
	if failure != nil {
		return core.LoanRecord{}, e.reject(opReturnItem, start, holderID, itemKey, failure)
	}

	loan := e.latestOpenLoan(holderID, itemKey)
	if loan == nil {
		return core.LoanRecord{}, e.reject(opReturnItem, start, holderID, itemKey, core.NewFailure(
			core.NoActiveLoan,
			fmt.Sprintf("%s has no open loan of '%s'", holder.DisplayName, item.Title),
		))
	}

	now := e.now()
	if err := loan.Close(now); err != nil {
		// latestOpenLoan only yields open records
		return core.LoanRecord{}, err
	}

	e.openLoans--

	item.MarkReturned()
	holder.RecordReturn(itemKey)

	e.record(core.BuildItemReturnedByHolder(*loan, now))
	e.broadcast(core.NewNotification(core.NotificationItemReturned, returnedMessage(holder, item, *loan), now))
	e.recordOpenLoans()
	e.succeed(opReturnItem, start, logAttrHolderID, holderID, logAttrItemKey, itemKey, logAttrTransactionID, loan.TransactionID())

	return *loan, nil
}

// LoansFor returns all loan records of the holder, open and closed, in creation order.
// Records of a deregistered holder are still returned.
func (e *Engine) LoansFor(holderID core.HolderIDString) []core.LoanRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	loans := make([]core.LoanRecord, 0)

	for _, loan := range e.ledger {
		if loan.HolderID() == holderID {
			loans = append(loans, *loan)
		}
	}

	return loans
}

// OverdueLoans returns all open loan records that are overdue at the current clock time.
func (e *Engine) OverdueLoans() []core.LoanRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.overdueAt(e.now())
}

// Ledger returns every loan record in creation order.
func (e *Engine) Ledger() []core.LoanRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	loans := make([]core.LoanRecord, 0, len(e.ledger))
	for _, loan := range e.ledger {
		loans = append(loans, *loan)
	}

	return loans
}

// NotifyOverdue broadcasts one reminder per overdue loan and returns how many were sent.
// Nothing is de-duplicated: calling it twice sends every reminder twice.
// Loans whose holder or item is no longer registered are skipped.
// The reminders of one call are journaled as one correlated chain.
func (e *Engine) NotifyOverdue() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	now := e.now()
	sent := 0
	metadata := shell.NewEventMetadata()

	for _, loan := range e.overdueAt(now) {
		holder, holderExists := e.holders[loan.HolderID()]
		item, itemExists := e.items[loan.ItemKey()]

		if !holderExists || !itemExists {
			continue
		}

		e.recordWith(core.BuildOverdueReminderSent(loan, now), metadata)
		metadata = metadata.FollowUp()
		e.broadcast(core.NewNotification(core.NotificationOverdueReminder, overdueMessage(holder, item, loan, now), now))
		sent++
	}

	e.succeed(opNotifyOverdue, start, logAttrReminderCount, sent)

	return sent
}

func (e *Engine) resolve(
	holderID core.HolderIDString,
	itemKey core.ItemKeyString,
) (*core.Holder, *core.CatalogItem, *core.Failure) {

	holder, exists := e.holders[holderID]
	if !exists {
		return nil, nil, holderNotFound(holderID)
	}

	item, exists := e.items[itemKey]
	if !exists {
		return nil, nil, itemNotFound(itemKey)
	}

	return holder, item, nil
}

func (e *Engine) latestOpenLoan(holderID core.HolderIDString, itemKey core.ItemKeyString) *core.LoanRecord {
	for i := len(e.ledger) - 1; i >= 0; i-- {
		loan := e.ledger[i]

		if loan.IsOpen() && loan.HolderID() == holderID && loan.ItemKey() == itemKey {
			return loan
		}
	}

	return nil
}

func (e *Engine) openItemKeysOf(holderID core.HolderIDString) []core.ItemKeyString {
	itemKeys := make([]core.ItemKeyString, 0)

	for _, loan := range e.ledger {
		if loan.IsOpen() && loan.HolderID() == holderID {
			itemKeys = append(itemKeys, loan.ItemKey())
		}
	}

	return itemKeys
}

func (e *Engine) overdueAt(reference time.Time) []core.LoanRecord {
	overdue := make([]core.LoanRecord, 0)

	for _, loan := range e.ledger {
		if loan.IsOpen() && loan.IsOverdue(reference) {
			overdue = append(overdue, *loan)
		}
	}

	return overdue
}

func (e *Engine) nextTransactionID() core.TransactionIDString {
	return transactionIDPrefix + strconv.Itoa(len(e.ledger)+1)
}
