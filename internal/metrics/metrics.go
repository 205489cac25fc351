// Package metrics exposes Prometheus counters for resolutions, tier lookups,
// adapter caches and circuit breakers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	resolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "capsule_resolutions_total",
			Help: "Resolutions by category and outcome (resolved, absent, invalid)",
		},
		[]string{"category", "outcome"},
	)

	tierLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "capsule_tier_lookups_total",
			Help: "Source lookups by category, source and outcome (hit, absent, failed)",
		},
		[]string{"category", "source", "outcome"},
	)

	cacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "capsule_source_cache_requests_total",
			Help: "Adapter body cache requests by source and result (hit, miss)",
		},
		[]string{"source", "result"},
	)

	breakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "capsule_circuit_breaker_state",
			Help: "Current state of per-host circuit breakers (0=closed, 1=half-open, 2=open)",
		},
		[]string{"host"},
	)
)

func init() {
	prometheus.MustRegister(resolutions)
	prometheus.MustRegister(tierLookups)
	prometheus.MustRegister(cacheRequests)
	prometheus.MustRegister(breakerState)
}

// RecordResolution counts one Resolve call
func RecordResolution(category, outcome string) {
	resolutions.WithLabelValues(category, outcome).Inc()
}

// RecordTierLookup counts one source lookup
func RecordTierLookup(category, source, outcome string) {
	tierLookups.WithLabelValues(category, source, outcome).Inc()
}

// RecordCache counts one adapter cache request
func RecordCache(source string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheRequests.WithLabelValues(source, result).Inc()
}

// RecordBreakerState stores the current breaker state for a host
func RecordBreakerState(host string, state int) {
	breakerState.WithLabelValues(host).Set(float64(state))
}
