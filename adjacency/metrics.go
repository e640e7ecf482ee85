package adjacency

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/sempath/metric"
)

// storeMetrics holds Prometheus metrics for the adjacency cache.
type storeMetrics struct {
	lookups     *prometheus.CounterVec // By outcome (hit/miss/fetch_failure)
	entries     prometheus.Gauge
	saves       prometheus.Gauge // Nodes written by the most recent save
	corruptions prometheus.Gauge // 1 if the cache file was discarded at load
}

// newStoreMetrics creates and registers store metrics with the provided registry.
func newStoreMetrics(registry *metric.Registry) (*storeMetrics, error) {
	if registry == nil {
		return nil, nil // Metrics disabled
	}

	m := &storeMetrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sempath",
			Subsystem: "adjacency",
			Name:      "lookups_total",
			Help:      "Total number of cache lookups by outcome",
		}, []string{"outcome"}),

		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sempath",
			Subsystem: "adjacency",
			Name:      "entries",
			Help:      "Number of nodes currently cached",
		}),

		saves: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sempath",
			Subsystem: "adjacency",
			Name:      "last_save_entries",
			Help:      "Number of nodes written by the most recent save",
		}),

		corruptions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sempath",
			Subsystem: "adjacency",
			Name:      "cache_corrupt",
			Help:      "Whether the cache file was discarded as corrupt at load",
		}),
	}

	if err := registry.RegisterCounterVec("adjacency", "lookups", m.lookups); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge("adjacency", "entries", m.entries); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge("adjacency", "last_save_entries", m.saves); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge("adjacency", "cache_corrupt", m.corruptions); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *storeMetrics) recordLookup(outcome string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(outcome).Inc()
}

func (m *storeMetrics) setEntries(n int) {
	if m == nil {
		return
	}
	m.entries.Set(float64(n))
}

func (m *storeMetrics) recordSave(n int) {
	if m == nil {
		return
	}
	m.saves.Set(float64(n))
}

func (m *storeMetrics) recordCorruption() {
	if m == nil {
		return
	}
	m.corruptions.Set(1)
}
