package conceptnet

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/sempath/metric"
)

// clientMetrics holds Prometheus metrics for remote graph fetches.
type clientMetrics struct {
	requests        *prometheus.CounterVec   // By status (success/transport_error/protocol_error)
	requestDuration *prometheus.HistogramVec // By status
	droppedEdges    *prometheus.CounterVec   // By reason
}

// newClientMetrics creates and registers client metrics with the provided registry.
func newClientMetrics(registry *metric.Registry) (*clientMetrics, error) {
	if registry == nil {
		return nil, nil // Metrics disabled
	}

	m := &clientMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sempath",
			Subsystem: "conceptnet",
			Name:      "requests_total",
			Help:      "Total number of remote graph requests",
		}, []string{"status"}),

		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sempath",
			Subsystem: "conceptnet",
			Name:      "request_duration_seconds",
			Help:      "Remote graph request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"status"}),

		droppedEdges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sempath",
			Subsystem: "conceptnet",
			Name:      "dropped_edges_total",
			Help:      "Total number of remote edges dropped during direction classification",
		}, []string{"reason"}),
	}

	if err := registry.RegisterCounterVec("conceptnet", "requests_total", m.requests); err != nil {
		return nil, err
	}
	if err := registry.RegisterHistogramVec("conceptnet", "request_duration", m.requestDuration); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounterVec("conceptnet", "dropped_edges", m.droppedEdges); err != nil {
		return nil, err
	}

	return m, nil
}

// recordRequest records a completed request attempt.
func (m *clientMetrics) recordRequest(status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(status).Inc()
	m.requestDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// recordDroppedEdge records an edge discarded because neither endpoint
// matched the queried node.
func (m *clientMetrics) recordDroppedEdge() {
	if m == nil {
		return
	}
	m.droppedEdges.WithLabelValues("unrelated_endpoint").Inc()
}
