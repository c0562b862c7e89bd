package shell

import (
	"time"
)

const (
	// OperationsMetric counts engine operations by operation and status.
	OperationsMetric = "lending_operations_total"

	// RejectionsMetric counts rejected operations by operation and failure kind.
	RejectionsMetric = "lending_rejections_total"

	// OperationDurationMetric tracks engine operation duration in seconds.
	OperationDurationMetric = "lending_operation_duration_seconds"

	// NotificationsDeliveredMetric counts notifications handed to subscribers.
	NotificationsDeliveredMetric = "lending_notifications_delivered_total"

	// NotificationFailuresMetric counts deliveries a subscriber failed to handle.
	NotificationFailuresMetric = "lending_notification_failures_total"

	// OpenLoansMetric is the number of currently open loans.
	OpenLoansMetric = "lending_open_loans"

	// JournalFailuresMetric counts domain events that could not be journaled.
	JournalFailuresMetric = "lending_journal_failures_total"

	// StatusSuccess indicates a completed operation.
	StatusSuccess = "success"

	// StatusRejected indicates an operation rejected by a business rule.
	StatusRejected = "rejected"

	// LabelOperation is the metric label holding the operation name.
	LabelOperation = "operation"

	// LabelStatus is the metric label holding the operation status.
	LabelStatus = "status"

	// LabelKind is the metric label holding the failure or notification kind.
	LabelKind = "kind"
)

// Logger interface for operational logging, warnings, and error reporting. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting lending metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}
