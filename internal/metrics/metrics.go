// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatalogFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_catalog_fetches_total",
			Help: "Catalog discover calls by language and outcome (ok, empty, unavailable, rejected, invalid)",
		},
		[]string{"language", "outcome"},
	)

	CatalogFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_catalog_fetch_duration_seconds",
			Help:    "Latency of catalog discover calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"language"},
	)

	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_recommendations_total",
			Help: "Recommendation requests by outcome (found, none)",
		},
		[]string{"outcome"},
	)

	RankDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelmatch_rank_duration_seconds",
			Help:    "Time spent building the similarity index and ranking",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reelmatch_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmatch_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelmatch_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

func RecordCatalogFetch(language, outcome string, d time.Duration) {
	CatalogFetches.WithLabelValues(language, outcome).Inc()
	CatalogFetchDuration.WithLabelValues(language).Observe(d.Seconds())
}

func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
