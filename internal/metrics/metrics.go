package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CurrentStockEggs = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "current_stock_eggs",
			Help: "Computed current egg stock per branch (signed)",
		},
		[]string{"branch"},
	)

	LowStockAlertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "low_stock_alerts_total",
			Help: "Low stock alerts dispatched per branch",
		},
		[]string{"branch"},
	)

	DispatchBatchesSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_batches_saved_total",
			Help: "Dispatch batches created or updated",
		},
	)
)
