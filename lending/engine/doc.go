// Package engine contains the lending engine: the single place where holders, catalog items
// and the loan ledger are changed.
//
// Every operation runs as one critical section over holders, items and ledger.
// Rejected operations return a *core.Failure and leave all state untouched.
// Holder notifications are broadcast before the operation returns.
//
// Optional collaborators are wired with functional options:
//
//	e, err := engine.New(
//		engine.WithClock(clock),
//		engine.WithLogger(slog.Default()),
//		engine.WithMetrics(collector),
//		engine.WithJournal(j),
//	)
package engine
