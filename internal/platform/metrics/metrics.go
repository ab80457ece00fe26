// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tours_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tours_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	authOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tours_auth_outcomes_total",
		Help: "Registration and login attempts by outcome",
	}, []string{"operation", "outcome"})

	searchResults = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tours_query_results",
		Help:    "Number of tours returned per query",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	}, []string{"operation"})

	ratingFilterDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tours_search_rating_filtered_total",
		Help: "Tours that matched the storage predicate but fell below the requested minimum rating",
	})
)

// ObserveHTTPRequest records an HTTP request metric. route is the matched
// route pattern, never the raw path, to keep label cardinality bounded.
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// ObserveAuth counts a register or login attempt with its outcome.
func ObserveAuth(operation, outcome string) {
	authOutcomes.WithLabelValues(operation, outcome).Inc()
}

// ObserveQuery records how many tours a list, get or search returned.
func ObserveQuery(operation string, results int) {
	searchResults.WithLabelValues(operation).Observe(float64(results))
}

// ObserveRatingFiltered counts tours removed by the in-memory rating filter.
func ObserveRatingFiltered(n int) {
	if n > 0 {
		ratingFilterDropped.Add(float64(n))
	}
}
