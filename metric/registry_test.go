package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCounterVec(name string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sempath",
		Subsystem: "test",
		Name:      name,
		Help:      "test counter",
	}, []string{"status"})
}

func TestRegistry_RegisterCounterVec(t *testing.T) {
	r := NewRegistry()

	err := r.RegisterCounterVec("client", "requests_total", newTestCounterVec("requests_total"))
	require.NoError(t, err)

	// Same component.metric key is rejected
	err = r.RegisterCounterVec("client", "requests_total", newTestCounterVec("requests_total"))
	assert.Error(t, err)
}

func TestRegistry_RegisterGauge(t *testing.T) {
	r := NewRegistry()

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "sempath",
		Subsystem: "test",
		Name:      "cache_entries",
		Help:      "test gauge",
	})

	require.NoError(t, r.RegisterGauge("cache", "entries", gauge))
	assert.Error(t, r.RegisterGauge("cache", "entries", gauge))
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry()

	cv := newTestCounterVec("removable_total")
	require.NoError(t, r.RegisterCounterVec("client", "removable", cv))

	assert.True(t, r.Unregister("client", "removable"))
	assert.False(t, r.Unregister("client", "removable"))

	// Re-registration works after unregister
	assert.NoError(t, r.RegisterCounterVec("client", "removable", newTestCounterVec("removable_total")))
}

func TestServer_Address(t *testing.T) {
	s := NewServer(0, "", NewRegistry())
	assert.Equal(t, "http://localhost:9090/metrics", s.Address())

	s = NewServer(8083, "/m", NewRegistry())
	assert.Equal(t, "http://localhost:8083/m", s.Address())
}
