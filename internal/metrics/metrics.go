package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "activity_dashboard_http_requests_total",
		Help: "Total number of HTTP requests processed.",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "activity_dashboard_http_request_duration_seconds",
		Help:    "Histogram of latencies for HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	providerFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "activity_dashboard_provider_fetches_total",
		Help: "Total number of outbound calls to the telephony provider.",
	}, []string{"operation", "outcome"})
)

// ObserveRequest records one completed HTTP request.
func ObserveRequest(method, path string, status int, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// ObserveProviderFetch records one outbound provider call and its outcome.
func ObserveProviderFetch(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	providerFetchesTotal.WithLabelValues(operation, outcome).Inc()
}
