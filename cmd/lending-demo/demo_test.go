package main

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/lending-library-go/lending/shell/config"
)

var demoStart = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

func Test_Demo_RunsDefaultScript(t *testing.T) {
	// arrange
	var out bytes.Buffer
	cfg := config.Config{DemoAdvanceDays: 20, MetricsDump: true}

	seed, err := loadSeed("")
	require.NoError(t, err)

	d, err := newDemo(cfg, seed, slog.New(slog.DiscardHandler), &out, demoStart)
	require.NoError(t, err)

	// act
	err = d.run()

	// assert
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Ada Lovelace borrowed 978-0-13-110362-7 as TRANS-1, due 2025-03-17")
	assert.Contains(t, text, "rejected borrow of 978-0-441-17271-9 by Ada Lovelace: BorrowLimitReached: Ada Lovelace already holds 3 of 3 items")
	assert.Contains(t, text, "rejected borrow of 978-0-13-110362-7 by Grace Hopper: ItemUnavailable")
	assert.Contains(t, text, "rejected return of 978-0-13-110362-7 by Grace Hopper: NoActiveLoan")
	assert.Contains(t, text, "Grace Hopper returned 978-0-441-17271-9 (TRANS-4), 0 day(s) late")
	assert.Contains(t, text, "reminders sent: 3")
	assert.Contains(t, text, "Ada Lovelace returned 978-0-13-110362-7 (TRANS-1), 6 day(s) late")
	assert.Contains(t, text, "[item_returned] Ada Lovelace returned 'The C Programming Language' 6 days late!")
	assert.Contains(t, text, "[overdue_reminder] Reminder for Ada Lovelace: 'Pride and Prejudice' is 6 days overdue")
	assert.Contains(t, text, "transactions: 4 (open: 2, overdue: 2)")
	assert.Contains(t, text, "lending_operations_total")

	assert.Contains(t, text, "delivery order: S-1001, S-1002, T-2001, front-desk")
	assert.Contains(t, text, "front desk received 9 notification(s)")
	assert.Contains(t, text, "rejections journaled: 3")
	assert.Contains(t, text, "  S-1001 rejected: BorrowLimitReached")
	assert.Contains(t, text, "  S-1002 rejected: ItemUnavailable, NoActiveLoan")
	assert.Contains(t, text, "reminders journaled: 3 in 1 run(s)")
	assert.Contains(t, text,
		"history of 978-0-13-110362-7: ItemAddedToCatalog, ItemLentToHolder, OverdueReminderSent, ItemReturnedByHolder")
	assert.Contains(t, text, "S-1002 and 978-0-13-110362-7: LendingFailed, LendingFailed")

	stats := d.engine.Statistics()
	assert.Equal(t, 3, stats.Holders)
	assert.Equal(t, 6, stats.Items)
	assert.Equal(t, 4, stats.AvailableItems)
}

func Test_Demo_RejectsTinySeed(t *testing.T) {
	seed, err := config.ParseSeed([]byte("holders:\n  - id: S-1\n    category: student\n"))
	require.NoError(t, err)

	_, err = newDemo(config.Config{}, seed, slog.New(slog.DiscardHandler), &bytes.Buffer{}, demoStart)

	assert.ErrorIs(t, err, ErrSeedTooSmall)
}
