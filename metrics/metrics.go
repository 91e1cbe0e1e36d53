package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cityhive_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)

	EntityCreations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cityhive_entity_creations_total",
			Help: "Total number of entity creation attempts by outcome",
		},
		[]string{"entity", "outcome"},
	)

	HealthProbeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cityhive_health_probe_duration_seconds",
			Help:    "Time taken by dependency health probes",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"component"},
	)

	HealthProbeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cityhive_health_probe_failures_total",
			Help: "Total number of failed dependency health probes",
		},
		[]string{"component", "reason"},
	)
)
