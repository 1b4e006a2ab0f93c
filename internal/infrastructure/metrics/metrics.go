// Package metrics owns the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"claims-backoffice/internal/domain/claim"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "claims_backoffice"

type Metrics struct {
	reg *prometheus.Registry

	HTTPInFlight prometheus.Gauge
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	transitions *prometheus.CounterVec
	byStatus    *prometheus.GaugeVec
}

// New builds a private registry so tests can create as many as they like.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		HTTPInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "claims",
			Name:      "status_transitions_total",
			Help:      "Persisted claim status changes.",
		}, []string{"from", "to"}),
		byStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "claims",
			Name:      "by_status",
			Help:      "Number of claims per status, refreshed by the stats job.",
		}, []string{"status"}),
	}
	m.reg.MustRegister(
		m.HTTPInFlight,
		m.HTTPRequests,
		m.HTTPDuration,
		m.transitions,
		m.byStatus,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler exposes the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveTransition(from, to claim.Status) {
	m.transitions.WithLabelValues(string(from), string(to)).Inc()
}

// SetStatusCounts overwrites the per-status gauge. Every canonical status is
// written so statuses that dropped to zero do not keep a stale value.
func (m *Metrics) SetStatusCounts(counts map[claim.Status]int64) {
	for _, s := range claim.Statuses() {
		m.byStatus.WithLabelValues(string(s)).Set(float64(counts[s]))
	}
}
