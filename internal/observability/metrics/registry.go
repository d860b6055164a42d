// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track request patterns and performance of the digest server
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Business metrics track the collection pipeline
var (
	// ArticlesCollectedTotal counts articles collected from each source
	ArticlesCollectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_collected_total",
			Help: "Total number of articles collected from sources",
		},
		[]string{"source"},
	)

	// SourceFailuresTotal counts adapter-level failures by source
	SourceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_failures_total",
			Help: "Total number of source adapter failures",
		},
		[]string{"source"},
	)

	// FetchFailuresTotal counts outbound fetch failures by classification
	FetchFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fetch_failures_total",
			Help: "Total number of outbound fetch failures",
		},
		[]string{"kind"}, // kind: timeout, http_status, network
	)

	// RunDuration measures the duration of a full pipeline run
	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pipeline_run_duration_seconds",
			Help:    "Time taken to run the full collection pipeline",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	// RunsTotal counts pipeline runs by outcome
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_runs_total",
			Help: "Total number of pipeline runs",
		},
		[]string{"outcome"}, // outcome: success, empty
	)
)
