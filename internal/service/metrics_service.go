package service

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsSnapshot is a point-in-time copy of the format counters.
type MetricsSnapshot struct {
	DaysEncoded        uint64 `json:"days_encoded" yaml:"days_encoded"`
	DaysDecoded        uint64 `json:"days_decoded" yaml:"days_decoded"`
	DegradedDays       uint64 `json:"degraded_days" yaml:"degraded_days"`
	ValidationFailures uint64 `json:"validation_failures" yaml:"validation_failures"`
}

// MetricsService encapsulates Prometheus instrumentation for period format
// processing.
type MetricsService struct {
	registry           *prometheus.Registry
	daysEncoded        prometheus.Counter
	daysDecoded        prometheus.Counter
	degradedDays       *prometheus.CounterVec
	validationFailures *prometheus.CounterVec

	encodedCount  uint64
	decodedCount  uint64
	degradedCount uint64
	failureCount  uint64
}

// NewMetricsService registers the period format collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	daysEncoded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "periodformat_days_encoded_total",
		Help: "Total number of days compressed into unit codes",
	})

	daysDecoded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "periodformat_days_decoded_total",
		Help: "Total number of days expanded from unit codes",
	})

	degradedDays := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "periodformat_degraded_days_total",
		Help: "Days whose codes or subjects could not be applied in full",
	}, []string{"operation"})

	validationFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "periodformat_validation_failures_total",
		Help: "Days rejected by the encoder, by reason",
	}, []string{"reason"})

	registry.MustRegister(daysEncoded, daysDecoded, degradedDays, validationFailures)

	return &MetricsService{
		registry:           registry,
		daysEncoded:        daysEncoded,
		daysDecoded:        daysDecoded,
		degradedDays:       degradedDays,
		validationFailures: validationFailures,
	}
}

// Gatherer exposes the registry for exporters.
func (m *MetricsService) Gatherer() prometheus.Gatherer {
	if m == nil {
		return prometheus.NewRegistry()
	}
	return m.registry
}

// WriteTextfile dumps the collectors in the text exposition format for the
// node exporter textfile collector.
func (m *MetricsService) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Gatherer())
}

// ObserveEncoded counts a successfully encoded day.
func (m *MetricsService) ObserveEncoded() {
	if m == nil {
		return
	}
	m.daysEncoded.Inc()
	atomic.AddUint64(&m.encodedCount, 1)
}

// ObserveDecoded counts a decoded day.
func (m *MetricsService) ObserveDecoded() {
	if m == nil {
		return
	}
	m.daysDecoded.Inc()
	atomic.AddUint64(&m.decodedCount, 1)
}

// ObserveDegraded counts a day that decode or expand could only partially apply.
func (m *MetricsService) ObserveDegraded(operation string) {
	if m == nil {
		return
	}
	m.degradedDays.WithLabelValues(operation).Inc()
	atomic.AddUint64(&m.degradedCount, 1)
}

// ObserveValidationFailure counts a rejected day.
func (m *MetricsService) ObserveValidationFailure(reason string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(reason).Inc()
	atomic.AddUint64(&m.failureCount, 1)
}

// Snapshot returns the aggregated counters.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{
		DaysEncoded:        atomic.LoadUint64(&m.encodedCount),
		DaysDecoded:        atomic.LoadUint64(&m.decodedCount),
		DegradedDays:       atomic.LoadUint64(&m.degradedCount),
		ValidationFailures: atomic.LoadUint64(&m.failureCount),
	}
}
