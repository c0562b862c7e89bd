package broadcast_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/lending-library-go/lending/broadcast"
	"github.com/AntonStoeckl/lending-library-go/lending/core"
	"github.com/AntonStoeckl/lending-library-go/testutil/testdoubles"
)

func Test_Broadcaster_Publish_DeliversInSubscriptionOrder(t *testing.T) {
	// arrange
	order := &testdoubles.DeliveryLog{}
	first := testdoubles.NewRecordingSubscriber("s-1", order)
	second := testdoubles.NewRecordingSubscriber("s-2", order)
	third := testdoubles.NewRecordingSubscriber("s-3", order)

	b := broadcast.NewBroadcaster()
	b.Subscribe(first)
	b.Subscribe(second)
	b.Subscribe(third)

	// act
	report := b.Publish(givenNotification("x"))

	// assert
	assert.Equal(t, 3, report.Delivered)
	assert.Empty(t, report.Failures)
	assert.Equal(t, []string{"s-1", "s-2", "s-3"}, order.IDs())

	for _, s := range []*testdoubles.RecordingSubscriber{first, second, third} {
		require.Len(t, s.Received(), 1)
		assert.Equal(t, "x", s.Received()[0].Text)
	}
}

func Test_Broadcaster_Unsubscribe_StopsDelivery(t *testing.T) {
	// arrange
	order := &testdoubles.DeliveryLog{}
	first := testdoubles.NewRecordingSubscriber("s-1", order)
	second := testdoubles.NewRecordingSubscriber("s-2", order)
	third := testdoubles.NewRecordingSubscriber("s-3", order)

	b := broadcast.NewBroadcaster()
	b.Subscribe(first)
	b.Subscribe(second)
	b.Subscribe(third)
	b.Publish(givenNotification("x"))

	// act
	b.Unsubscribe("s-2")
	report := b.Publish(givenNotification("y"))

	// assert
	assert.Equal(t, 2, report.Delivered)
	assert.Len(t, first.Received(), 2)
	assert.Len(t, second.Received(), 1)
	assert.Len(t, third.Received(), 2)
	assert.Equal(t, []string{"s-1", "s-2", "s-3", "s-1", "s-3"}, order.IDs())
}

func Test_Broadcaster_Subscribe_IsIdempotent(t *testing.T) {
	// arrange
	subscriber := testdoubles.NewRecordingSubscriber("s-1", nil)
	b := broadcast.NewBroadcaster()

	// act
	b.Subscribe(subscriber)
	b.Subscribe(subscriber)
	b.Publish(givenNotification("x"))

	// assert
	assert.Equal(t, []string{"s-1"}, b.SubscriberIDs())
	assert.Len(t, subscriber.Received(), 1)
}

func Test_Broadcaster_Unsubscribe_UnknownIsNoop(t *testing.T) {
	// arrange
	b := broadcast.NewBroadcaster()
	b.Subscribe(testdoubles.NewRecordingSubscriber("s-1", nil))

	// act
	b.Unsubscribe("s-unknown")

	// assert
	assert.True(t, b.IsSubscribed("s-1"))
	assert.False(t, b.IsSubscribed("s-unknown"))
}

func Test_Broadcaster_Publish_IsolatesFaultySubscribers(t *testing.T) {
	// arrange
	spy := testdoubles.NewLogHandlerSpy(false)
	before := testdoubles.NewRecordingSubscriber("s-1", nil)
	erroring := testdoubles.NewErroringSubscriber("s-2")
	panicking := testdoubles.NewPanickingSubscriber("s-3")
	after := testdoubles.NewRecordingSubscriber("s-4", nil)

	b := broadcast.NewBroadcaster(broadcast.WithLogger(slog.New(spy)))
	b.Subscribe(before)
	b.Subscribe(erroring)
	b.Subscribe(panicking)
	b.Subscribe(after)

	// act
	report := b.Publish(givenNotification("x"))

	// assert
	assert.Equal(t, 2, report.Delivered)
	require.Len(t, report.Failures, 2)
	assert.Equal(t, "s-2", report.Failures[0].SubscriberID)
	assert.ErrorIs(t, report.Failures[0].Err, testdoubles.ErrDeliveryRefused)
	assert.Equal(t, "s-3", report.Failures[1].SubscriberID)
	assert.ErrorIs(t, report.Failures[1].Err, broadcast.ErrSubscriberPanicked)
	assert.ErrorContains(t, report.Failures[1].Err, "exploded")

	assert.Len(t, before.Received(), 1)
	assert.Len(t, after.Received(), 1)
	assert.Equal(t, 1, erroring.Attempts())
	assert.Equal(t, 1, panicking.Attempts())
	assert.True(t, spy.HasWarnLog("notification delivery failed"))
	assert.True(t, spy.HasDebugLog("notification delivered"))
}

func Test_Broadcaster_Publish_WithoutSubscribers(t *testing.T) {
	// act
	report := broadcast.NewBroadcaster().Publish(givenNotification("x"))

	// assert
	assert.Equal(t, 0, report.Delivered)
	assert.Empty(t, report.Failures)
}

func givenNotification(text string) core.Notification {
	return core.NewNotification(core.NotificationItemLent, text, time.Now())
}
