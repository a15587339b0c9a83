// Package metrics declares the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
	OutcomeCanceled = "canceled"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placement_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "placement_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placement_http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"route"},
	)

	Analyses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placement_analyses_total",
			Help: "Total number of analyses by outcome",
		},
		[]string{"outcome"},
	)

	ReadinessScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "placement_readiness_score",
			Help:    "Distribution of computed readiness scores",
			Buckets: prometheus.LinearBuckets(35, 10, 7),
		},
	)

	HistoryOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placement_history_operations_total",
			Help: "Total number of history repository operations by backend, operation and result",
		},
		[]string{"backend", "operation", "result"},
	)

	UserStoreFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "placement_user_store_fallbacks_total",
			Help: "Times the relational user store was unavailable and the in-memory store was used",
		},
	)
)
