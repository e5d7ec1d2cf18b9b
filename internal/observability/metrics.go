// Package observability provides metrics, tracing, and store-level logging.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOperations counts store operations by entity and operation.
	StoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waypoint_store_operations_total",
		Help: "Total number of store operations by entity and operation",
	}, []string{"entity", "operation"})

	// StoreErrors counts store failures by entity and error code.
	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waypoint_store_errors_total",
		Help: "Total number of store errors by entity and error code",
	}, []string{"entity", "code"})

	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waypoint_redis_error_total",
		Help: "Total number of Redis errors by command",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "waypoint_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}

// RecordStoreOperation increments the operation counter for an entity.
func RecordStoreOperation(entity, operation string) {
	StoreOperations.WithLabelValues(entity, operation).Inc()
}

// RecordStoreError increments the error counter for an entity.
func RecordStoreError(entity, code string) {
	StoreErrors.WithLabelValues(entity, code).Inc()
}
