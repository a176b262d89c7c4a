package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts served requests by route and status
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_http_requests_total",
			Help: "HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPDuration tracks request latency
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "content_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// CMSQueries counts document store queries by template and outcome
	CMSQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_cms_queries_total",
			Help: "Document store queries by query name and result",
		},
		[]string{"query", "result"},
	)

	// CMSQueryDuration tracks document store round-trips, retries included
	CMSQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "content_cms_query_duration_seconds",
			Help:    "Document store query latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	// CacheLookups counts query cache hits and misses
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_query_cache_lookups_total",
			Help: "Query cache lookups by result",
		},
		[]string{"result"},
	)
)
