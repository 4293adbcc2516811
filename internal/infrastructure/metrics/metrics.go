// Package metrics publishes validation counters and timings via
// Prometheus. Collectors are registered on the default registry, so
// exposing them is one promhttp handler away.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pipeline_validations_total",
		Help: "Validation runs performed",
	})

	findingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pipeline_validation_findings_total",
		Help: "Findings produced, by severity",
	}, []string{"severity"})

	invalidTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pipeline_validations_invalid_total",
		Help: "Validation runs that produced at least one error",
	})

	backendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pipeline_validation_backend_failures_total",
		Help: "Backend validation round-trips that degraded to local-only",
	})

	staleRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pipeline_validation_stale_runs_total",
		Help: "Backend results discarded because a newer run superseded them",
	})

	validationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pipeline_validation_duration_seconds",
		Help:    "Wall-clock duration of validation runs",
		Buckets: prometheus.DefBuckets,
	})
)

// ObserveRun records one completed validation run.
func ObserveRun(d time.Duration, errors, warnings, info int) {
	validationsTotal.Inc()
	validationDuration.Observe(d.Seconds())
	findingsTotal.WithLabelValues("error").Add(float64(errors))
	findingsTotal.WithLabelValues("warning").Add(float64(warnings))
	findingsTotal.WithLabelValues("info").Add(float64(info))
	if errors > 0 {
		invalidTotal.Inc()
	}
}

// IncBackendFailure counts a degraded backend round-trip.
func IncBackendFailure() { backendFailures.Inc() }

// IncStaleRun counts a discarded stale backend result.
func IncStaleRun() { staleRunsTotal.Inc() }
