package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "taskhive_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// FeedRequests counts feed reads, labeled by whether the actor's
	// social neighborhood was empty.
	FeedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskhive_feed_requests_total",
		Help: "Total number of feed requests by neighborhood state",
	}, []string{"neighborhood"})

	// AuthorizationDenials counts denied operations by route and error code.
	AuthorizationDenials = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskhive_authorization_denials_total",
		Help: "Total number of denied operations by route and error code",
	}, []string{"route", "code"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}

// RecordFeedRequest increments the feed request counter.
func RecordFeedRequest(emptyNeighborhood bool) {
	state := "populated"
	if emptyNeighborhood {
		state = "empty"
	}
	FeedRequests.WithLabelValues(state).Inc()
}

// RecordDenial increments the authorization denial counter.
func RecordDenial(route, code string) {
	AuthorizationDenials.WithLabelValues(route, code).Inc()
}
