// Package metrics exposes Prometheus collectors for the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "today_record"

var (
	// FeedbackGenerations counts generation requests by outcome.
	// Labels: outcome (success or an error code such as NO_RECORDS_FOUND)
	FeedbackGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feedback",
			Name:      "generations_total",
			Help:      "Daily feedback generation requests by outcome",
		},
		[]string{"outcome"},
	)

	// CompletionDuration tracks how long completion calls take.
	// Labels: result (success, timeout, error)
	CompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "feedback",
			Name:      "completion_duration_seconds",
			Help:      "Duration of completion provider calls in seconds",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
		},
		[]string{"result"},
	)

	// HTTPRequests counts served HTTP requests.
	// Labels: method, route, status
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration tracks request latency.
	// Labels: method, route
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Outcome label for a successful generation.
const OutcomeSuccess = "success"

// ObserveGeneration records the outcome of one generation request.
func ObserveGeneration(outcome string) {
	FeedbackGenerations.WithLabelValues(outcome).Inc()
}

// ObserveCompletion records one completion call.
func ObserveCompletion(result string, d time.Duration) {
	CompletionDuration.WithLabelValues(result).Observe(d.Seconds())
}
