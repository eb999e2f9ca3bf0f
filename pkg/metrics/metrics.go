package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookflow_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookflow_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookflow_store_operations_total",
			Help: "Total number of key-value store operations",
		},
		[]string{"operation", "key"},
	)

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bookflow_store_operation_duration_seconds",
			Help:    "Key-value store operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "key"},
	)

	LoansProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookflow_loans_processed_total",
			Help: "Loan lifecycle transitions processed",
		},
		[]string{"transition"},
	)
)

func RecordHTTPRequest(method, endpoint, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RecordStoreOperation(operation, key string, duration time.Duration) {
	StoreOperationsTotal.WithLabelValues(operation, key).Inc()
	StoreOperationDuration.WithLabelValues(operation, key).Observe(duration.Seconds())
}

func RecordLoanTransition(transition string) {
	LoansProcessed.WithLabelValues(transition).Inc()
}
