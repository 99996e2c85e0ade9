// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "huntboard_api_requests_total",
			Help: "Total number of requests sent to the remote API",
		},
		[]string{"resource", "method"},
	)

	APIRequestsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "huntboard_api_requests_failed_total",
			Help: "Total number of failed API requests",
		},
		[]string{"resource", "error_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "huntboard_api_request_duration_seconds",
			Help: "Duration of remote API requests in seconds",
		},
		[]string{"resource"},
	)
)
