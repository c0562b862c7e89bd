// Package prometheus provides a Prometheus implementation of the lending MetricsCollector.
//
// Instruments are created on first use and registered on the given prometheus.Registerer:
//   - RecordDuration -> HistogramVec (seconds)
//   - IncrementCounter -> CounterVec
//   - RecordValue -> GaugeVec
//
// The label keys of the first call define the label names of a metric. Later calls with a
// different label set are dropped.
package prometheus
