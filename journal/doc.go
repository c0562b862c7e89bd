// Package journal provides an append-only, in-memory record of storable events
// for the lending engine.
//
// Every state change and every rejected operation of the engine can be appended
// to a journal as a StorableEvent, and read back with a Filter.
//
// The filter supports:
//   - Event types
//   - JSON payload predicates (top-level keys, compared as strings)
//   - Alternatives of the above (OrMatching)
//
// Common usage pattern:
//
//	filter := journal.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(
//			core.ItemLentToHolderEventType,
//			core.ItemReturnedByHolderEventType).
//		AndAnyPredicateOf(journal.P("ItemKey", itemKey)).
//		Finalize()
//
//	events, maxSeq, err := j.Query(filter)
//
// The journal lives for the lifetime of the process. Nothing is written to disk.
package journal
