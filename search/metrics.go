package search

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/sempath/metric"
)

// engineMetrics holds Prometheus metrics for the search engine.
type engineMetrics struct {
	searches      *prometheus.CounterVec // By outcome (found/exhausted/aborted)
	expansions    *prometheus.CounterVec // By side (forward/backward)
	depthDiscards *prometheus.CounterVec // By side
}

// newEngineMetrics creates and registers engine metrics with the provided registry.
func newEngineMetrics(registry *metric.Registry) (*engineMetrics, error) {
	if registry == nil {
		return nil, nil // Metrics disabled
	}

	m := &engineMetrics{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sempath",
			Subsystem: "search",
			Name:      "searches_total",
			Help:      "Total number of searches by outcome",
		}, []string{"outcome"}),

		expansions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sempath",
			Subsystem: "search",
			Name:      "expansions_total",
			Help:      "Total number of node expansions by frontier side",
		}, []string{"side"}),

		depthDiscards: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sempath",
			Subsystem: "search",
			Name:      "depth_discards_total",
			Help:      "Total number of frontier entries dropped at the depth limit",
		}, []string{"side"}),
	}

	if err := registry.RegisterCounterVec("search", "searches", m.searches); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounterVec("search", "expansions", m.expansions); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounterVec("search", "depth_discards", m.depthDiscards); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *engineMetrics) recordSearch(outcome string) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(outcome).Inc()
}

func (m *engineMetrics) recordExpansion(side string) {
	if m == nil {
		return
	}
	m.expansions.WithLabelValues(side).Inc()
}

func (m *engineMetrics) recordDepthDiscard(side string) {
	if m == nil {
		return
	}
	m.depthDiscards.WithLabelValues(side).Inc()
}
