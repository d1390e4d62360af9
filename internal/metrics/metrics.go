package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pipedesk_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pipedesk_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	storeOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pipedesk_store_operations_total",
		Help: "Count of document store operations by kind, operation and result",
	}, []string{"kind", "op", "result"})

	stageTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pipedesk_stage_transitions_total",
		Help: "Count of pipeline stage transitions by target stage",
	}, []string{"stage"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveStoreOp increments the store operation counter.
func ObserveStoreOp(kind, op, result string) {
	storeOperations.WithLabelValues(kind, op, result).Inc()
}

// ObserveStageTransition increments the stage transition counter.
func ObserveStageTransition(stage string) {
	stageTransitions.WithLabelValues(stage).Inc()
}
