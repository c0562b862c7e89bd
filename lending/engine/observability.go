package engine

import (
	"time"

	"github.com/AntonStoeckl/lending-library-go/lending/core"
	"github.com/AntonStoeckl/lending-library-go/lending/shell"
)

const (
	logMsgOperationCompleted = "lending operation completed"
	logMsgOperationRejected  = "lending operation rejected"
	logMsgJournalFailed      = "journaling domain event failed"

	logAttrOperation     = "operation"
	logAttrHolderID      = "holder_id"
	logAttrItemKey       = "item_key"
	logAttrTransactionID = "transaction_id"
	logAttrReminderCount = "reminder_count"
	logAttrFailureKind   = "failure_kind"
	logAttrReason        = "reason"
	logAttrEventType     = "event_type"
	logAttrDurationMS    = "duration_ms"
	logAttrError         = "error"
)

// succeed logs and measures a completed operation. The args are extra log key/value pairs.
func (e *Engine) succeed(operation string, start time.Time, args ...any) {
	duration := time.Since(start)

	if e.logger != nil {
		e.logger.Info(
			logMsgOperationCompleted,
			append([]any{logAttrOperation, operation, logAttrDurationMS, toMilliseconds(duration)}, args...)...,
		)
	}

	e.recordOperation(operation, shell.StatusSuccess, duration)
}

// reject logs, measures and journals a rejected operation and returns the failure as error.
func (e *Engine) reject(
	operation string,
	start time.Time,
	holderID core.HolderIDString,
	itemKey core.ItemKeyString,
	failure *core.Failure,
) error {

	duration := time.Since(start)

	if e.logger != nil {
		e.logger.Warn(
			logMsgOperationRejected,
			logAttrOperation, operation,
			logAttrHolderID, holderID,
			logAttrItemKey, itemKey,
			logAttrFailureKind, string(failure.Kind),
			logAttrReason, failure.Reason,
		)
	}

	e.recordOperation(operation, shell.StatusRejected, duration)

	if e.metrics != nil {
		e.metrics.IncrementCounter(shell.RejectionsMetric, map[string]string{
			shell.LabelOperation: operation,
			shell.LabelKind:      string(failure.Kind),
		})
	}

	e.record(core.BuildLendingFailed(operation, holderID, itemKey, failure, e.now()))

	return failure
}

func (e *Engine) recordOperation(operation string, status string, duration time.Duration) {
	if e.metrics == nil {
		return
	}

	e.metrics.IncrementCounter(shell.OperationsMetric, map[string]string{
		shell.LabelOperation: operation,
		shell.LabelStatus:    status,
	})
	e.metrics.RecordDuration(shell.OperationDurationMetric, duration, map[string]string{
		shell.LabelOperation: operation,
	})
}

func (e *Engine) recordOpenLoans() {
	if e.metrics != nil {
		e.metrics.RecordValue(shell.OpenLoansMetric, float64(e.openLoans), nil)
	}
}

// broadcast publishes the notification and counts the delivery outcome.
func (e *Engine) broadcast(notification core.Notification) {
	report := e.broadcaster.Publish(notification)

	if e.metrics == nil {
		return
	}

	labels := map[string]string{shell.LabelKind: string(notification.Kind)}

	for range report.Delivered {
		e.metrics.IncrementCounter(shell.NotificationsDeliveredMetric, labels)
	}

	for range report.Failures {
		e.metrics.IncrementCounter(shell.NotificationFailuresMetric, labels)
	}
}

// record journals the domain event as the start of its own metadata chain.
func (e *Engine) record(event core.DomainEvent) {
	e.recordWith(event, shell.NewEventMetadata())
}

// recordWith journals the domain event. A journal failure is logged and counted,
// the operation that produced the event still succeeds.
func (e *Engine) recordWith(event core.DomainEvent, metadata shell.EventMetadata) {
	if e.journal == nil {
		return
	}

	storableEvent, err := shell.StorableEventFrom(event, metadata)
	if err == nil {
		err = e.journal.Append(storableEvent)
	}

	if err == nil {
		return
	}

	if e.logger != nil {
		e.logger.Error(logMsgJournalFailed, logAttrEventType, event.IsEventType(), logAttrError, err.Error())
	}

	if e.metrics != nil {
		e.metrics.IncrementCounter(shell.JournalFailuresMetric, map[string]string{shell.LabelKind: event.IsEventType()})
	}
}

func toMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
