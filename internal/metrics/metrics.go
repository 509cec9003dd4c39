package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Upstream (TVmaze) request metrics
var (
	// UpstreamRequestsTotal counts requests to the metadata API by endpoint
	// ("search", "episodes") and outcome ("success", "status", "malformed", "error").
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tvmaze_requests_total",
			Help: "Total number of requests sent to the TVmaze API.",
		},
		[]string{"endpoint", "outcome"},
	)

	// UpstreamRequestDuration observes round-trip latency including body decoding.
	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tvmaze_request_duration_seconds",
			Help:    "Latency of TVmaze API requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// CoalescedRequestsTotal counts queries that joined an identical in-flight request.
	CoalescedRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tvmaze_coalesced_requests_total",
			Help: "Total number of queries served by an identical in-flight request.",
		},
		[]string{"endpoint"},
	)

	// PageRendersTotal counts HTML page renders by result.
	PageRendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_renders_total",
			Help: "Total number of rendered pages.",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		UpstreamRequestsTotal,
		UpstreamRequestDuration,
		CoalescedRequestsTotal,
		PageRendersTotal,
	)
}
