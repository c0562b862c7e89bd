package engine

import (
	"github.com/AntonStoeckl/lending-library-go/journal"
	"github.com/AntonStoeckl/lending-library-go/lending/core"
	"github.com/AntonStoeckl/lending-library-go/lending/shell"
)

// HistoryEntry is one journaled domain event together with its journal position and metadata.
type HistoryEntry struct {
	SequenceNumber journal.SequenceNumberUint
	Event          core.DomainEvent
	Metadata       shell.EventMetadata
}

// Journal returns the configured journal, or nil.
func (e *Engine) Journal() Journal {
	return e.journal
}

// History reads the journaled domain events matching the filter, in journal order.
func (e *Engine) History(filter journal.Filter) (core.DomainEvents, error) {
	storableEvents, err := e.query(filter)
	if err != nil {
		return nil, err
	}

	return shell.DomainEventsFrom(storableEvents)
}

// Entries is History with sequence numbers and metadata.
func (e *Engine) Entries(filter journal.Filter) ([]HistoryEntry, error) {
	storableEvents, err := e.query(filter)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		event, mapErr := shell.DomainEventFrom(storableEvent)
		if mapErr != nil {
			return nil, mapErr
		}

		metadata, mapErr := shell.EventMetadataFrom(storableEvent)
		if mapErr != nil {
			return nil, mapErr
		}

		entries = append(entries, HistoryEntry{
			SequenceNumber: storableEvent.SequenceNumber,
			Event:          event,
			Metadata:       metadata,
		})
	}

	return entries, nil
}

// HolderHistory reads all journaled events about one holder.
func (e *Engine) HolderHistory(holderID core.HolderIDString) (core.DomainEvents, error) {
	return e.History(
		journal.BuildEventFilter().
			Matching().
			AnyPredicateOf(journal.P("HolderID", holderID)).
			Finalize(),
	)
}

// FailuresOf reads the rejected operations of one holder.
func (e *Engine) FailuresOf(holderID core.HolderIDString) ([]core.LendingFailed, error) {
	events, err := e.History(
		journal.BuildEventFilter().
			Matching().
			AnyEventTypeOf(core.LendingFailedEventType).
			AndAnyPredicateOf(journal.P("HolderID", holderID)).
			Finalize(),
	)
	if err != nil {
		return nil, err
	}

	failures := make([]core.LendingFailed, 0, len(events))
	for _, event := range events {
		if failed, ok := event.(core.LendingFailed); ok {
			failures = append(failures, failed)
		}
	}

	return failures, nil
}

// ItemHistory reads the catalog and loan events of one item. Rejections are left out, see FailuresOf.
func (e *Engine) ItemHistory(itemKey core.ItemKeyString) (core.DomainEvents, error) {
	return e.History(
		journal.BuildEventFilter().
			Matching().
			AnyEventTypeOf(core.ItemAddedToCatalogEventType, core.ItemRemovedFromCatalogEventType).
			AndAnyPredicateOf(journal.P("ItemKey", itemKey)).
			OrMatching().
			AnyPredicateOf(journal.P("ItemKey", itemKey)).
			AndAnyEventTypeOf(
				core.ItemLentToHolderEventType,
				core.ItemReturnedByHolderEventType,
				core.OverdueReminderSentEventType,
			).
			Finalize(),
	)
}

// LoanHistory reads what happened between one holder and one item, rejections included.
func (e *Engine) LoanHistory(holderID core.HolderIDString, itemKey core.ItemKeyString) (core.DomainEvents, error) {
	return e.History(
		journal.BuildEventFilter().
			Matching().
			AnyEventTypeOf(
				core.ItemLentToHolderEventType,
				core.ItemReturnedByHolderEventType,
				core.OverdueReminderSentEventType,
				core.LendingFailedEventType,
			).
			AndAllPredicatesOf(journal.P("HolderID", holderID), journal.P("ItemKey", itemKey)).
			Finalize(),
	)
}

func (e *Engine) query(filter journal.Filter) (journal.StorableEvents, error) {
	if e.journal == nil {
		return nil, ErrNoJournal
	}

	storableEvents, _, err := e.journal.Query(filter)

	return storableEvents, err
}
