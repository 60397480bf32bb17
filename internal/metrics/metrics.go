package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mywallet",
			Name:      "http_requests_total",
			Help:      "Count of processed HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mywallet",
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route", "status"},
	)

	// AuthRejections counts protected requests turned away by the auth guard.
	AuthRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mywallet",
			Name:      "auth_rejections_total",
			Help:      "Protected requests rejected by the auth guard",
		},
		[]string{"reason"}, // invalid_token, user_not_found, error
	)

	RecordsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mywallet",
			Name:      "records_created_total",
			Help:      "Total number of records created",
		},
	)
)

func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	labels := prometheus.Labels{
		"method": method,
		"route":  route,
		"status": strconv.Itoa(status),
	}
	HTTPRequestsTotal.With(labels).Inc()
	HTTPRequestDuration.With(labels).Observe(duration.Seconds())
}

func RecordAuthRejection(reason string) {
	AuthRejections.WithLabelValues(reason).Inc()
}
