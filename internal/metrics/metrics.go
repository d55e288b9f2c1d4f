package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoginAttempts counts login attempts partitioned by outcome.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artisthub_login_attempts_total",
		Help: "Number of login attempts by outcome.",
	}, []string{"outcome"})

	// DashboardRequests counts dashboard metric requests partitioned by role.
	DashboardRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artisthub_dashboard_requests_total",
		Help: "Number of dashboard metric requests by role.",
	}, []string{"role"})

	// HTTPDuration observes request latency partitioned by method and path.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "artisthub_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)
