package prometheus_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lendingprometheus "github.com/AntonStoeckl/lending-library-go/adapters/prometheus"
	"github.com/AntonStoeckl/lending-library-go/lending/shell"
)

func Test_MetricsCollector_Counter(t *testing.T) {
	// arrange
	reg := prometheus.NewRegistry()
	collector := lendingprometheus.NewMetricsCollector(reg)

	// act
	collector.IncrementCounter(shell.OperationsMetric, map[string]string{"operation": "borrow", "status": "success"})
	collector.IncrementCounter(shell.OperationsMetric, map[string]string{"status": "success", "operation": "borrow"})
	collector.IncrementCounter(shell.OperationsMetric, map[string]string{"operation": "borrow", "status": "rejected"})

	// assert
	expected := `
# HELP lending_operations_total Lending operations by operation and status
# TYPE lending_operations_total counter
lending_operations_total{operation="borrow",status="rejected"} 1
lending_operations_total{operation="borrow",status="success"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), shell.OperationsMetric))
}

func Test_MetricsCollector_GaugeWithoutLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := lendingprometheus.NewMetricsCollector(reg)

	collector.RecordValue(shell.OpenLoansMetric, 3, nil)
	collector.RecordValue(shell.OpenLoansMetric, 2, nil)

	expected := `
# HELP lending_open_loans Currently open loans
# TYPE lending_open_loans gauge
lending_open_loans 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), shell.OpenLoansMetric))
}

func Test_MetricsCollector_Histogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := lendingprometheus.NewMetricsCollector(reg)

	collector.RecordDuration(shell.OperationDurationMetric, 2*time.Millisecond, map[string]string{"operation": "borrow"})
	collector.RecordDuration(shell.OperationDurationMetric, time.Millisecond, map[string]string{"operation": "return_item"})

	count, err := testutil.GatherAndCount(reg, shell.OperationDurationMetric)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func Test_MetricsCollector_DropsMismatchingLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := lendingprometheus.NewMetricsCollector(reg)

	collector.IncrementCounter("custom_total", map[string]string{"kind": "a"})
	collector.IncrementCounter("custom_total", map[string]string{"other": "b"})

	expected := `
# HELP custom_total custom_total
# TYPE custom_total counter
custom_total{kind="a"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "custom_total"))
}

func Test_MetricsCollector_NameClashIsDropped(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := lendingprometheus.NewMetricsCollector(reg)

	collector.IncrementCounter("clash", nil)

	assert.NotPanics(t, func() {
		collector.RecordValue("clash", 1, nil)
	})

	count, err := testutil.GatherAndCount(reg, "clash")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
