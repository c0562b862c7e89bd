package journal_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/lending-library-go/journal"
	"github.com/AntonStoeckl/lending-library-go/testutil/testdoubles"
)

func Test_Memory_Append_AssignsSequenceNumbers(t *testing.T) {
	// arrange
	j, err := journal.NewMemory()
	require.NoError(t, err)

	// act
	err = j.Append(
		givenStorableEvent(t, "HolderRegistered", `{"HolderID":"h-1"}`),
		givenStorableEvent(t, "ItemAddedToCatalog", `{"ItemKey":"978-0"}`),
	)
	require.NoError(t, err)
	err = j.Append(givenStorableEvent(t, "ItemLentToHolder", `{"HolderID":"h-1","ItemKey":"978-0"}`))
	require.NoError(t, err)

	// assert
	events, maxSeq, err := j.Query(journal.BuildEventFilter().MatchingAnyEvent())
	assert.NoError(t, err)
	assert.Equal(t, 3, j.Len())
	assert.Equal(t, uint(3), maxSeq)
	assert.Equal(t, []uint{1, 2, 3}, []uint{events[0].SequenceNumber, events[1].SequenceNumber, events[2].SequenceNumber})
}

func Test_Memory_Append_RejectsEmptyInput(t *testing.T) {
	// arrange
	j, err := journal.NewMemory()
	require.NoError(t, err)

	// act
	err = j.Append()

	// assert
	assert.ErrorIs(t, err, journal.ErrEmptyEventsSupplied)
	assert.Equal(t, 0, j.Len())
}

//nolint:funlen
func Test_Memory_Query_Filters(t *testing.T) {
	// arrange
	j, err := journal.NewMemory()
	require.NoError(t, err)

	require.NoError(t, j.Append(
		givenStorableEvent(t, "HolderRegistered", `{"HolderID":"h-1"}`),
		givenStorableEvent(t, "ItemLentToHolder", `{"HolderID":"h-1","ItemKey":"978-0"}`),
		givenStorableEvent(t, "ItemLentToHolder", `{"HolderID":"h-2","ItemKey":"978-1"}`),
		givenStorableEvent(t, "ItemReturnedByHolder", `{"HolderID":"h-1","ItemKey":"978-0","OverdueDays":3}`),
	))

	testCases := []struct {
		name        string
		filter      journal.Filter
		expectedSeq []uint
	}{
		{
			name:        "any event",
			filter:      journal.BuildEventFilter().MatchingAnyEvent(),
			expectedSeq: []uint{1, 2, 3, 4},
		},
		{
			name:        "single event type",
			filter:      journal.BuildEventFilter().Matching().AnyEventTypeOf("ItemLentToHolder").Finalize(),
			expectedSeq: []uint{2, 3},
		},
		{
			name: "event types and any predicate",
			filter: journal.BuildEventFilter().Matching().
				AnyEventTypeOf("ItemLentToHolder", "ItemReturnedByHolder").
				AndAnyPredicateOf(journal.P("HolderID", "h-1")).
				Finalize(),
			expectedSeq: []uint{2, 4},
		},
		{
			name: "all predicates",
			filter: journal.BuildEventFilter().Matching().
				AnyEventTypeOf("ItemLentToHolder", "ItemReturnedByHolder").
				AndAllPredicatesOf(journal.P("HolderID", "h-1"), journal.P("ItemKey", "978-0")).
				Finalize(),
			expectedSeq: []uint{2, 4},
		},
		{
			name: "numeric predicate",
			filter: journal.BuildEventFilter().Matching().
				AnyPredicateOf(journal.P("OverdueDays", "3")).
				Finalize(),
			expectedSeq: []uint{4},
		},
		{
			name: "or matching",
			filter: journal.BuildEventFilter().Matching().
				AnyEventTypeOf("HolderRegistered").
				OrMatching().
				AnyPredicateOf(journal.P("HolderID", "h-2")).
				Finalize(),
			expectedSeq: []uint{1, 3},
		},
		{
			name: "missing key never matches",
			filter: journal.BuildEventFilter().Matching().
				AnyPredicateOf(journal.P("Category", "fiction")).
				Finalize(),
			expectedSeq: []uint{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			events, _, queryErr := j.Query(tc.filter)

			// assert
			assert.NoError(t, queryErr)

			seq := make([]uint, 0, len(events))
			for _, event := range events {
				seq = append(seq, event.SequenceNumber)
			}

			assert.Equal(t, tc.expectedSeq, seq)
		})
	}
}

func Test_Memory_WithLogger_LogsAppendAndQuery(t *testing.T) {
	// arrange
	spy := testdoubles.NewLogHandlerSpy(false)
	j, err := journal.NewMemory(journal.WithLogger(slog.New(spy)))
	require.NoError(t, err)

	// act
	require.NoError(t, j.Append(givenStorableEvent(t, "HolderRegistered", `{"HolderID":"h-1"}`)))
	_, _, err = j.Query(journal.BuildEventFilter().MatchingAnyEvent())
	require.NoError(t, err)

	// assert
	assert.True(t, spy.HasDebugLog("journal events appended"))
	assert.True(t, spy.HasDebugLog("journal query completed"))
}

func Test_NewMemory_RejectsNilLogger(t *testing.T) {
	// act
	_, err := journal.NewMemory(journal.WithLogger(nil))

	// assert
	assert.ErrorIs(t, err, journal.ErrNilLogger)
}

func givenStorableEvent(t *testing.T, eventType string, payload string) journal.StorableEvent {
	t.Helper()

	event, err := journal.BuildStorableEvent(eventType, time.Now().UTC(), []byte(payload), []byte(`{}`))
	require.NoError(t, err)

	return event
}
