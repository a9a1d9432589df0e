// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "Total number of HTTP requests by method, route pattern and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ProfileOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_profile_operations_total",
			Help: "Profile store operations by operation and outcome",
		},
		[]string{"operation", "result"},
	)

	ProfilesStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_profiles_stored",
			Help: "Number of profiles currently held in memory",
		},
	)

	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_login_attempts_total",
			Help: "Demo login attempts by provider and outcome",
		},
		[]string{"provider", "result"},
	)
)

// RecordHTTPRequest records one served request. route should be the router pattern
// (e.g. /api/profiles/{id}) rather than the raw path to keep label cardinality bounded.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordProfileOperation counts a profile store call.
func RecordProfileOperation(operation, result string) {
	ProfileOperationsTotal.WithLabelValues(operation, result).Inc()
}

// SetProfilesStored publishes the current store size.
func SetProfilesStored(n int) {
	ProfilesStored.Set(float64(n))
}

// RecordLogin counts a login attempt.
func RecordLogin(provider, result string) {
	LoginAttemptsTotal.WithLabelValues(provider, result).Inc()
}

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
