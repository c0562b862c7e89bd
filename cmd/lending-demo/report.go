package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/common/expfmt"

	"github.com/AntonStoeckl/lending-library-go/journal"
	"github.com/AntonStoeckl/lending-library-go/lending/core"
)

// report prints the state of the library, the journal reads of historyOf, and the loan history
// between pairHolder and pairItem. An empty pairItem skips the item reads.
func (d *demo) report(historyOf core.HolderIDString, pairHolder core.HolderIDString, pairItem core.ItemKeyString) error {
	now := d.clock.Now()

	d.section("Statistics")
	stats := d.engine.Statistics()
	d.printf("holders: %d\nitems: %d (available: %d)\ntransactions: %d (open: %d, overdue: %d)\n",
		stats.Holders, stats.Items, stats.AvailableItems, stats.Transactions, stats.OpenLoans, stats.OverdueLoans)

	d.section("Ledger")
	for _, loan := range d.engine.Ledger() {
		d.printf("%-8s %-10s %-20s %-7s started %s due %s%s\n",
			loan.TransactionID(), loan.HolderID(), loan.ItemKey(), loan.Status(),
			loan.StartedAt().Format(time.DateOnly), loan.DueAt().Format(time.DateOnly), lateness(loan, now))
	}

	d.section("Notifications")
	for _, holder := range d.engine.AllHolders() {
		d.printf("%s (%s, limit %d, holds %d):\n", holder.DisplayName, holder.Category, holder.Limit(), holder.HeldCount())

		for _, notification := range holder.Inbox() {
			d.printf("  [%s] %s\n", notification.Kind, notification.Text)
		}
	}

	d.printf("delivery order: %s\n", strings.Join(d.engine.SubscriberIDs(), ", "))
	d.printf("front desk received %d notification(s)\n", d.frontDesk.seen)

	d.section("Journal")
	d.printf("events journaled: %d\n", d.journal.Len())

	history, err := d.engine.HolderHistory(historyOf)
	if err != nil {
		return fmt.Errorf("read holder history: %w", err)
	}

	for _, event := range history {
		d.printf("  %s %s\n", event.HasOccurredAt().Format(time.DateOnly), event.IsEventType())
	}

	if err = d.reportJournalReads(pairHolder, pairItem); err != nil {
		return err
	}

	if d.cfg.MetricsDump {
		return d.dumpMetrics()
	}

	return nil
}

func (d *demo) reportJournalReads(pairHolder core.HolderIDString, pairItem core.ItemKeyString) error {
	entries, err := d.engine.Entries(journal.BuildEventFilter().MatchingAnyEvent())
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}

	rejections := 0
	for _, entry := range entries {
		if entry.Event.IsErrorEvent() {
			rejections++
		}
	}

	d.printf("rejections journaled: %d\n", rejections)

	for _, holder := range d.engine.AllHolders() {
		failures, failuresErr := d.engine.FailuresOf(holder.ID)
		if failuresErr != nil {
			return fmt.Errorf("read failures: %w", failuresErr)
		}

		if len(failures) == 0 {
			continue
		}

		kinds := make([]string, 0, len(failures))
		for _, failure := range failures {
			kinds = append(kinds, failure.FailureKind)
		}

		d.printf("  %s rejected: %s\n", holder.ID, strings.Join(kinds, ", "))
	}

	reminders, err := d.engine.Entries(
		journal.BuildEventFilter().Matching().AnyEventTypeOf(core.OverdueReminderSentEventType).Finalize(),
	)
	if err != nil {
		return fmt.Errorf("read reminders: %w", err)
	}

	runs := make(map[string]struct{})
	for _, reminder := range reminders {
		runs[reminder.Metadata.CorrelationID] = struct{}{}
	}

	d.printf("reminders journaled: %d in %d run(s)\n", len(reminders), len(runs))

	if pairItem == "" {
		return nil
	}

	itemHistory, err := d.engine.ItemHistory(pairItem)
	if err != nil {
		return fmt.Errorf("read item history: %w", err)
	}

	loanHistory, err := d.engine.LoanHistory(pairHolder, pairItem)
	if err != nil {
		return fmt.Errorf("read loan history: %w", err)
	}

	d.printf("history of %s: %s\n", pairItem, eventTypes(itemHistory))
	d.printf("%s and %s: %s\n", pairHolder, pairItem, eventTypes(loanHistory))

	return nil
}

func eventTypes(events core.DomainEvents) string {
	names := make([]string, 0, len(events))
	for _, event := range events {
		names = append(names, event.IsEventType())
	}

	return strings.Join(names, ", ")
}

func (d *demo) dumpMetrics() error {
	d.section("Metrics")

	families, err := d.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	for _, family := range families {
		if _, err = expfmt.MetricFamilyToText(d.out, family); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

func lateness(loan core.LoanRecord, now time.Time) string {
	if days := loan.OverdueDays(now); days > 0 {
		return fmt.Sprintf(" (%d day(s) late)", days)
	}

	return ""
}
