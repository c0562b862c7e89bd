package testdoubles

import (
	"maps"
	"sync"
	"time"
)

// MetricsCollectorSpy records all metric calls for assertions.
type MetricsCollectorSpy struct {
	mu        sync.Mutex
	durations []SpyDurationRecord
	counters  []SpyCounterRecord
	values    []SpyValueRecord
}

// SpyDurationRecord represents a recorded duration metric call.
type SpyDurationRecord struct {
	Metric   string
	Duration time.Duration
	Labels   map[string]string
}

// SpyCounterRecord represents a recorded counter increment call.
type SpyCounterRecord struct {
	Metric string
	Labels map[string]string
}

// SpyValueRecord represents a recorded value metric call.
type SpyValueRecord struct {
	Metric string
	Value  float64
	Labels map[string]string
}

// NewMetricsCollectorSpy creates an empty MetricsCollectorSpy.
func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durations = append(s.durations, SpyDurationRecord{Metric: metric, Duration: duration, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters = append(s.counters, SpyCounterRecord{Metric: metric, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = append(s.values, SpyValueRecord{Metric: metric, Value: value, Labels: maps.Clone(labels)})
}

// CounterCount returns how often the counter was incremented with labels containing all given labels.
func (s *MetricsCollectorSpy) CounterCount(metric string, labels map[string]string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0

	for _, record := range s.counters {
		if record.Metric == metric && containsLabels(record.Labels, labels) {
			count++
		}
	}

	return count
}

// DurationCount returns how many durations were recorded for the metric.
func (s *MetricsCollectorSpy) DurationCount(metric string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0

	for _, record := range s.durations {
		if record.Metric == metric {
			count++
		}
	}

	return count
}

// LastValue returns the most recent value recorded for the metric.
func (s *MetricsCollectorSpy) LastValue(metric string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.values) - 1; i >= 0; i-- {
		if s.values[i].Metric == metric {
			return s.values[i].Value, true
		}
	}

	return 0, false
}

func containsLabels(actual map[string]string, expected map[string]string) bool {
	for key, value := range expected {
		if actual[key] != value {
			return false
		}
	}

	return true
}
