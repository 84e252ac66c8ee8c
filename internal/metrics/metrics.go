// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors and the registry they are registered with.
type Metrics struct {
	registry *prometheus.Registry

	RPCRequests   *prometheus.CounterVec
	RPCDuration   *prometheus.HistogramVec
	SnapshotSaves *prometheus.CounterVec
	SnapshotBytes prometheus.Gauge
}

// New creates the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leuth",
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "leuth",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		SnapshotSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leuth",
			Name:      "snapshot_saves_total",
			Help:      "State snapshot saves by result.",
		}, []string{"result"}),
		SnapshotBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "leuth",
			Name:      "snapshot_bytes",
			Help:      "Size of the last persisted state snapshot.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RPCRequests,
		m.RPCDuration,
		m.SnapshotSaves,
		m.SnapshotBytes,
	)
	return m
}

// ObserveSave records one snapshot save attempt. Its signature matches
// state.WithSaveHook.
func (m *Metrics) ObserveSave(bytes int, err error) {
	if err != nil {
		m.SnapshotSaves.WithLabelValues("error").Inc()
		return
	}
	m.SnapshotSaves.WithLabelValues("ok").Inc()
	m.SnapshotBytes.Set(float64(bytes))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
