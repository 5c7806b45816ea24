package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estates_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "estates_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "estates_http_active_requests",
			Help: "Number of requests currently being served",
		},
	)

	ListingSearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "estates_listing_search_results",
			Help:    "Number of listings returned per search",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	MortgageCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estates_mortgage_calculations_total",
			Help: "Mortgage calculations by outcome",
		},
		[]string{"outcome"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estates_bookings_total",
			Help: "Visit booking requests by outcome",
		},
		[]string{"outcome"},
	)
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
)

// RecordAPIRequest records one finished request.
func RecordAPIRequest(method, route, status string, d time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, status).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(start bool) {
	if start {
		ActiveRequests.Inc()
	} else {
		ActiveRequests.Dec()
	}
}

// RecordOutcome bumps an outcome counter; err decides the label.
func RecordOutcome(vec *prometheus.CounterVec, err error) {
	if err != nil {
		vec.WithLabelValues(OutcomeRejected).Inc()
		return
	}
	vec.WithLabelValues(OutcomeOK).Inc()
}
