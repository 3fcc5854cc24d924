package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "portal_http_requests_total", Help: "Total HTTP requests by route and status"},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "portal_http_request_duration_seconds", Help: "HTTP request latency", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)
	KVOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "portal_kv_operations_total", Help: "Total key-value store operations"},
		[]string{"backend", "op", "outcome"},
	)
	KVDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "portal_kv_operation_duration_seconds", Help: "Key-value store operation latency", Buckets: prometheus.DefBuckets},
		[]string{"backend", "op"},
	)
	KVPrefixScanSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "portal_kv_prefix_scan_entries", Help: "Entries returned by a prefix scan", Buckets: prometheus.ExponentialBuckets(1, 4, 8)},
		[]string{"prefix"},
	)
	CASRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "portal_kv_cas_retries_total", Help: "Compare-and-swap attempts lost to a concurrent writer"},
		[]string{"backend"},
	)
)

var registerOnce sync.Once

// Register adds the collectors to the default registry. Safe to call more
// than once (tests build several apps in one process).
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequests, HTTPDuration, KVOperations, KVDuration, KVPrefixScanSize, CASRetries)
	})
}
