// Package observability carries the cross-layer logging context helpers and
// the domain-level Prometheus collectors.
package observability

import "github.com/prometheus/client_golang/prometheus"

// Domain counters. Registered once from main via InitMetrics; unregistered
// collectors still accept observations, so unit tests skip registration.
var (
	GenerationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "question_generations_total",
			Help: "Total number of generated question sets by airline type",
		},
		[]string{"airline_type"},
	)
	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "question_cache_hits_total",
			Help: "Total number of question set cache hits",
		},
	)
	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "question_cache_misses_total",
			Help: "Total number of question set cache misses",
		},
	)
	ExtractionFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "extraction_failures_total",
			Help: "Total number of extraction calls degraded to local analysis",
		},
	)
	ExtractionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "extraction_duration_seconds",
			Help:    "Extraction collaborator round-trip duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
		},
	)
)

// InitMetrics registers the domain collectors with the default registry.
func InitMetrics() {
	prometheus.MustRegister(GenerationsTotal)
	prometheus.MustRegister(CacheHits)
	prometheus.MustRegister(CacheMisses)
	prometheus.MustRegister(ExtractionFailures)
	prometheus.MustRegister(ExtractionDuration)
}
