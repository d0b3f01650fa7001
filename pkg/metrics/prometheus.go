package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	classifications    *prometheus.CounterVec
	fingerprintsStored *prometheus.CounterVec
	errorsTotal        *prometheus.CounterVec
	confidence         *prometheus.HistogramVec
	latency            *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		classifications: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "whalescope_classifications_total",
				Help: "Total wallet classifications by resulting entity type",
			},
			[]string{"entity_type"},
		),
		fingerprintsStored: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "whalescope_fingerprints_stored_total",
				Help: "Total fingerprints written to the store",
			},
			[]string{"backend"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "whalescope_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		confidence: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "whalescope_confidence_score",
				Help:    "Distribution of classification confidence scores",
				Buckets: prometheus.LinearBuckets(0, 0.1, 11),
			},
			[]string{"entity_type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "whalescope_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordClassification records one finished classification.
func (r *Recorder) RecordClassification(entityType string, confidence float64) {
	r.classifications.WithLabelValues(entityType).Inc()
	r.confidence.WithLabelValues(entityType).Observe(confidence)
}

// RecordFingerprintStored records a fingerprint write.
func (r *Recorder) RecordFingerprintStored(backend string) {
	r.fingerprintsStored.WithLabelValues(backend).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
