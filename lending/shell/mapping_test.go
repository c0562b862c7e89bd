package shell_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/lending-library-go/journal"
	"github.com/AntonStoeckl/lending-library-go/lending/core"
	"github.com/AntonStoeckl/lending-library-go/lending/shell"
)

func Test_StorableEventFrom_ItemLentToHolder(t *testing.T) {
	// arrange
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	loan := core.OpenLoanRecord("TRANS-7", "h-1", "978-0", start)
	metadata := shell.NewEventMetadata()

	// act
	storable, err := shell.StorableEventFrom(core.BuildItemLentToHolder(*loan), metadata)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.ItemLentToHolderEventType, storable.EventType)
	assert.True(t, start.Equal(storable.OccurredAt))
	assert.Contains(t, string(storable.PayloadJSON), `"TransactionID":"TRANS-7"`)
	assert.Contains(t, string(storable.PayloadJSON), `"ItemKey":"978-0"`)

	decodedMetadata, err := shell.EventMetadataFrom(storable)
	require.NoError(t, err)
	assert.Equal(t, metadata, decodedMetadata)
	assert.NotEmpty(t, decodedMetadata.MessageID)
}

func Test_DomainEventFrom_RoundTrip(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	loan := core.OpenLoanRecord("TRANS-1", "h-1", "978-0", start)
	holder, err := core.BuildHolder(core.CategoryStudent, "h-1", "Ada", "ada@example.org", "S-1")
	require.NoError(t, err)
	item := core.NewCatalogItem("978-0", "Dune", "Frank Herbert", "sf")
	lateReturn := loan.DueAt().Add(3 * core.Day)

	testCases := []struct {
		name  string
		event core.DomainEvent
	}{
		{name: "holder registered", event: core.BuildHolderRegistered(holder.Snapshot(), start)},
		{name: "holder deregistered", event: core.BuildHolderDeregistered("h-1", start)},
		{name: "item added", event: core.BuildItemAddedToCatalog(*item, start)},
		{name: "item removed", event: core.BuildItemRemovedFromCatalog("978-0", start)},
		{name: "item lent", event: core.BuildItemLentToHolder(*loan)},
		{name: "item returned", event: core.BuildItemReturnedByHolder(*loan, lateReturn)},
		{name: "overdue reminder", event: core.BuildOverdueReminderSent(*loan, lateReturn)},
		{
			name:  "lending failed",
			event: core.BuildLendingFailed("borrow", "h-1", "978-0", core.NewFailure(core.ItemUnavailable, "taken"), start),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			storable, mapErr := shell.StorableEventFrom(tc.event, shell.NewEventMetadata())
			require.NoError(t, mapErr)

			// act
			decoded, decodeErr := shell.DomainEventFrom(storable)

			// assert
			require.NoError(t, decodeErr)
			assert.Equal(t, tc.event.IsEventType(), decoded.IsEventType())
			assert.Equal(t, tc.event.IsErrorEvent(), decoded.IsErrorEvent())
			assert.True(t, tc.event.HasOccurredAt().Equal(decoded.HasOccurredAt()))
			assert.IsType(t, tc.event, decoded)
		})
	}
}

func Test_DomainEventFrom_ItemReturnedByHolder_KeepsOverdueDays(t *testing.T) {
	// arrange
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	loan := core.OpenLoanRecord("TRANS-1", "h-1", "978-0", start)
	storable, err := shell.StorableEventFrom(
		core.BuildItemReturnedByHolder(*loan, loan.DueAt().Add(3*core.Day)),
		shell.NewEventMetadata(),
	)
	require.NoError(t, err)

	// act
	decoded, err := shell.DomainEventFrom(storable)

	// assert
	require.NoError(t, err)
	returned, ok := decoded.(core.ItemReturnedByHolder)
	require.True(t, ok)
	assert.Equal(t, 3, returned.OverdueDays)
	assert.Equal(t, "TRANS-1", returned.TransactionID)
}

func Test_DomainEventFrom_UnknownEventType(t *testing.T) {
	// arrange
	storable, err := journal.BuildStorableEvent("SomethingElse", time.Now(), []byte(`{}`), []byte(`{}`))
	require.NoError(t, err)

	// act
	_, err = shell.DomainEventFrom(storable)

	// assert
	assert.ErrorIs(t, err, shell.ErrMappingToDomainEventFailed)
	assert.ErrorIs(t, err, shell.ErrMappingToDomainEventUnknownEventType)
}

func Test_DomainEventsFrom_StopsAtFirstError(t *testing.T) {
	// arrange
	good, err := shell.StorableEventFrom(core.BuildHolderDeregistered("h-1", time.Now()), shell.NewEventMetadata())
	require.NoError(t, err)
	bad, err := journal.BuildStorableEvent("SomethingElse", time.Now(), []byte(`{}`), []byte(`{}`))
	require.NoError(t, err)

	// act
	events, err := shell.DomainEventsFrom(journal.StorableEvents{good, bad})

	// assert
	assert.Error(t, err)
	assert.Nil(t, events)
}

func Test_EventMetadata_FollowUp_KeepsCorrelation(t *testing.T) {
	// arrange
	root := shell.NewEventMetadata()

	// act
	next := root.FollowUp()
	third := next.FollowUp()

	// assert
	assert.Equal(t, root.MessageID, root.CausationID)
	assert.Equal(t, root.MessageID, root.CorrelationID)

	assert.NotEqual(t, root.MessageID, next.MessageID)
	assert.Equal(t, root.MessageID, next.CausationID)
	assert.Equal(t, root.CorrelationID, next.CorrelationID)

	assert.Equal(t, next.MessageID, third.CausationID)
	assert.Equal(t, root.CorrelationID, third.CorrelationID)
}

func Test_EventMetadataFrom_RejectsForeignMetadata(t *testing.T) {
	// arrange
	storable, err := journal.BuildStorableEvent("SomethingElse", time.Now(), []byte(`{}`), []byte(`{"MessageID":42}`))
	require.NoError(t, err)

	// act
	_, err = shell.EventMetadataFrom(storable)

	// assert
	assert.ErrorIs(t, err, shell.ErrMappingToEventMetadataFailed)
}
