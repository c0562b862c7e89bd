package prometheus

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/AntonStoeckl/lending-library-go/lending/shell"
)

// Default histogram buckets for operation durations (in seconds).
var defaultBuckets = []float64{
	.00001, .000025, .00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1,
}

var helpTexts = map[string]string{
	shell.OperationsMetric:             "Lending operations by operation and status",
	shell.RejectionsMetric:             "Rejected lending operations by operation and failure kind",
	shell.OperationDurationMetric:      "Lending operation duration in seconds",
	shell.NotificationsDeliveredMetric: "Notifications handed to subscribers",
	shell.NotificationFailuresMetric:   "Notification deliveries a subscriber failed to handle",
	shell.OpenLoansMetric:              "Currently open loans",
	shell.JournalFailuresMetric:        "Domain events that could not be journaled",
}

// MetricsCollector implements shell.MetricsCollector on top of Prometheus vectors.
type MetricsCollector struct {
	registerer prometheus.Registerer

	mu         sync.Mutex
	histograms map[string]*prometheus.HistogramVec
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
}

// NewMetricsCollector creates a collector registering its instruments on reg.
func NewMetricsCollector(reg prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		registerer: reg,
		histograms: make(map[string]*prometheus.HistogramVec),
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
	}
}

// RecordDuration observes the duration in seconds.
func (m *MetricsCollector) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	histogram := m.histogram(metric, labels)
	if histogram == nil {
		return
	}

	if observer, err := histogram.GetMetricWith(labels); err == nil {
		observer.Observe(duration.Seconds())
	}
}

// IncrementCounter adds one to the counter.
func (m *MetricsCollector) IncrementCounter(metric string, labels map[string]string) {
	counter := m.counter(metric, labels)
	if counter == nil {
		return
	}

	if c, err := counter.GetMetricWith(labels); err == nil {
		c.Inc()
	}
}

// RecordValue sets the gauge to value.
func (m *MetricsCollector) RecordValue(metric string, value float64, labels map[string]string) {
	gauge := m.gauge(metric, labels)
	if gauge == nil {
		return
	}

	if g, err := gauge.GetMetricWith(labels); err == nil {
		g.Set(value)
	}
}

func (m *MetricsCollector) histogram(metric string, labels map[string]string) *prometheus.HistogramVec {
	m.mu.Lock()
	defer m.mu.Unlock()

	if histogram, exists := m.histograms[metric]; exists {
		return histogram
	}

	histogram := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    metric,
		Help:    helpFor(metric),
		Buckets: defaultBuckets,
	}, labelNames(labels))

	if !m.register(histogram) {
		return nil
	}

	m.histograms[metric] = histogram

	return histogram
}

func (m *MetricsCollector) counter(metric string, labels map[string]string) *prometheus.CounterVec {
	m.mu.Lock()
	defer m.mu.Unlock()

	if counter, exists := m.counters[metric]; exists {
		return counter
	}

	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: metric,
		Help: helpFor(metric),
	}, labelNames(labels))

	if !m.register(counter) {
		return nil
	}

	m.counters[metric] = counter

	return counter
}

func (m *MetricsCollector) gauge(metric string, labels map[string]string) *prometheus.GaugeVec {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gauge, exists := m.gauges[metric]; exists {
		return gauge
	}

	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: metric,
		Help: helpFor(metric),
	}, labelNames(labels))

	if !m.register(gauge) {
		return nil
	}

	m.gauges[metric] = gauge

	return gauge
}

// register reports false if the registerer refused the collector, e.g. for a name clash.
func (m *MetricsCollector) register(collector prometheus.Collector) bool {
	return m.registerer.Register(collector) == nil
}

func labelNames(labels map[string]string) []string {
	return slices.Sorted(maps.Keys(labels))
}

func helpFor(metric string) string {
	if help, ok := helpTexts[metric]; ok {
		return help
	}

	return metric
}
