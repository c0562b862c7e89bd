package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	lendingprometheus "github.com/AntonStoeckl/lending-library-go/adapters/prometheus"
	"github.com/AntonStoeckl/lending-library-go/journal"
	"github.com/AntonStoeckl/lending-library-go/lending/core"
	"github.com/AntonStoeckl/lending-library-go/lending/engine"
	"github.com/AntonStoeckl/lending-library-go/lending/shell/config"
)

// onTimeReturnDay is when the second holder brings its item back, well before the due date.
const onTimeReturnDay = 10

var ErrSeedTooSmall = errors.New("seed needs at least two holders and two items")

type demo struct {
	cfg       config.Config
	engine    *engine.Engine
	journal   *journal.Memory
	clock     *demoClock
	registry  *prometheus.Registry
	frontDesk *frontDesk
	out       io.Writer
}

// frontDesk counts every notification the library sends out.
type frontDesk struct {
	seen int
}

func (f *frontDesk) SubscriberID() string {
	return "front-desk"
}

func (f *frontDesk) ReceiveNotification(core.Notification) error {
	f.seen++

	return nil
}

func newDemo(cfg config.Config, seed config.Seed, logger *slog.Logger, out io.Writer, start time.Time) (*demo, error) {
	clock := newDemoClock(start)
	registry := prometheus.NewRegistry()

	memory, err := journal.NewMemory(journal.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	e, err := engine.New(
		engine.WithClock(clock.Now),
		engine.WithLogger(logger),
		engine.WithMetrics(lendingprometheus.NewMetricsCollector(registry)),
		engine.WithJournal(memory),
	)
	if err != nil {
		return nil, err
	}

	holders, err := seed.BuildHolders()
	if err != nil {
		return nil, err
	}

	items, err := seed.BuildItems()
	if err != nil {
		return nil, err
	}

	if len(holders) < 2 || len(items) < 2 {
		return nil, ErrSeedTooSmall
	}

	for _, holder := range holders {
		if err = e.RegisterHolder(holder); err != nil {
			return nil, fmt.Errorf("register holder: %w", err)
		}
	}

	for _, item := range items {
		if err = e.AddItem(item); err != nil {
			return nil, fmt.Errorf("add item: %w", err)
		}
	}

	desk := &frontDesk{}
	if err = e.Observe(desk); err != nil {
		return nil, fmt.Errorf("observe: %w", err)
	}

	return &demo{
		cfg:       cfg,
		engine:    e,
		journal:   memory,
		clock:     clock,
		registry:  registry,
		frontDesk: desk,
		out:       out,
	}, nil
}

// run plays the script and prints the report.
func (d *demo) run() error {
	holders := d.engine.AllHolders()
	first, second := holders[0], holders[1]

	d.section("Lending")

	d.borrowUntilRejected(first)

	firstHeld, err := d.engine.HeldItems(first.ID)
	if err != nil {
		return err
	}

	var secondBorrowed *core.LoanRecord

	if len(firstHeld) > 0 {
		d.borrow(second, firstHeld[0].Key)
		d.giveBack(second, firstHeld[0].Key)
	}

	if available := d.engine.AvailableItems(); len(available) > 0 {
		secondBorrowed = d.borrow(second, available[0].Key)
	}

	d.jumpTo(onTimeReturnDay)

	if secondBorrowed != nil {
		d.giveBack(second, secondBorrowed.ItemKey())
	}

	d.jumpTo(d.cfg.DemoAdvanceDays)

	d.section("Overdue")
	for _, loan := range d.engine.OverdueLoans() {
		d.printf("%s: %s holds %s, %d day(s) overdue\n",
			loan.TransactionID(), loan.HolderID(), loan.ItemKey(), loan.OverdueDays(d.clock.Now()))
	}
	d.printf("reminders sent: %d\n", d.engine.NotifyOverdue())

	if len(firstHeld) == 0 {
		return d.report(first.ID, second.ID, "")
	}

	d.giveBack(first, firstHeld[0].Key)

	return d.report(first.ID, second.ID, firstHeld[0].Key)
}

func (d *demo) borrowUntilRejected(holder core.Holder) {
	for _, item := range d.engine.AvailableItems() {
		if d.borrow(holder, item.Key) == nil {
			return
		}
	}
}

func (d *demo) borrow(holder core.Holder, itemKey core.ItemKeyString) *core.LoanRecord {
	loan, err := d.engine.Borrow(holder.ID, itemKey)
	if err != nil {
		d.printf("rejected borrow of %s by %s: %v\n", itemKey, holder.DisplayName, err)
		return nil
	}

	d.printf("%s borrowed %s as %s, due %s\n",
		holder.DisplayName, itemKey, loan.TransactionID(), loan.DueAt().Format(time.DateOnly))

	return &loan
}

func (d *demo) giveBack(holder core.Holder, itemKey core.ItemKeyString) {
	loan, err := d.engine.ReturnItem(holder.ID, itemKey)
	if err != nil {
		d.printf("rejected return of %s by %s: %v\n", itemKey, holder.DisplayName, err)
		return
	}

	completedAt, _ := loan.CompletedAt()
	d.printf("%s returned %s (%s), %d day(s) late\n",
		holder.DisplayName, itemKey, loan.TransactionID(), loan.OverdueDays(completedAt))
}

// jumpTo moves the demo clock to the given day after the start, never backwards.
func (d *demo) jumpTo(day int) {
	ledger := d.engine.Ledger()
	if len(ledger) == 0 {
		return
	}

	elapsed := int(d.clock.Now().Sub(ledger[0].StartedAt()) / core.Day)
	if day <= elapsed {
		return
	}

	d.clock.jump(day - elapsed)
	d.printf("... %d day(s) later, now %s\n", day-elapsed, d.clock.Now().Format(time.DateOnly))
}

func (d *demo) section(title string) {
	d.printf("\n== %s ==\n", title)
}

func (d *demo) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(d.out, format, args...)
}
