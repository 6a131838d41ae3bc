package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ConsoleRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "console_http_requests_total", Help: "Console API requests"},
		[]string{"method", "route", "status"},
	)
	ConsoleRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "console_http_request_duration_seconds",
			Help:    "Console API request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	BackendCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "backend_calls_total", Help: "Calls to the Locket backend"},
		[]string{"operation", "outcome"},
	)
	BackendCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_call_duration_seconds",
			Help:    "Latency of calls to the Locket backend",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	SessionsInvalidated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "sessions_invalidated_total", Help: "Sessions ended because the backend rejected their token"},
	)
	ImageUploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "ad_image_uploads_total", Help: "Ad image uploads"},
		[]string{"outcome"},
	)
)

// Backend call outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeUnauthorized = "unauthorized"
	OutcomeUnreachable  = "unreachable"
	OutcomeAPIError     = "api_error"
)

func init() {
	prometheus.MustRegister(
		ConsoleRequestsTotal, ConsoleRequestDuration,
		BackendCallsTotal, BackendCallDuration,
		SessionsInvalidated, ImageUploadsTotal,
	)
}

func Handler() http.Handler { return promhttp.Handler() }
