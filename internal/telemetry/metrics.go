// Package telemetry provides metrics and tracing for cinefeed.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	ActiveRequests   prometheus.Gauge
	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	CacheHits        *prometheus.CounterVec
	CacheMisses      *prometheus.CounterVec
	BatchGroups      prometheus.Counter
}

// NewMetrics creates and registers all metrics with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cinefeed",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cinefeed",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),

		ActiveRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cinefeed",
			Name:      "active_requests",
			Help:      "Number of currently active requests.",
		}),

		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cinefeed",
			Name:      "upstream_requests_total",
			Help:      "Total OMDb calls by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),

		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cinefeed",
			Name:      "upstream_duration_seconds",
			Help:      "OMDb call duration in seconds.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"endpoint"}),

		CacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cinefeed",
			Name:      "cache_hits_total",
			Help:      "Total gateway cache hits by key kind.",
		}, []string{"kind"}),

		CacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cinefeed",
			Name:      "cache_misses_total",
			Help:      "Total gateway cache misses by key kind.",
		}, []string{"kind"}),

		BatchGroups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cinefeed",
			Name:      "batch_groups_total",
			Help:      "Total batch groups issued to OMDb.",
		}),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.ActiveRequests,
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.CacheHits,
		m.CacheMisses,
		m.BatchGroups,
	)

	return m
}

// CacheLookup counts a hit or miss for a key kind ("movie", "search", "similar").
func (m *Metrics) CacheLookup(kind string, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHits.WithLabelValues(kind).Inc()
		return
	}
	m.CacheMisses.WithLabelValues(kind).Inc()
}

// Upstream records one OMDb call.
func (m *Metrics) Upstream(endpoint, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// BatchGroup counts one batch group.
func (m *Metrics) BatchGroup() {
	if m == nil {
		return
	}
	m.BatchGroups.Inc()
}
