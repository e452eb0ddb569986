package inspect

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the inspector's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "sift").
	Namespace string

	// Subsystem is the metrics subsystem (default: "inspect").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for query duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the inspector's Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the query duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "sift",
		Subsystem:   "inspect",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus metrics for the inspector.
// All recording methods are safe to call on a nil receiver.
type Metrics struct {
	queriesTotal  *prometheus.CounterVec
	queryDuration prometheus.Histogram
	queryMatches  prometheus.Histogram
	snapshotReads *prometheus.CounterVec
	watchEvents   prometheus.Counter
	reloadClients prometheus.Gauge
}

// NewMetrics creates and registers the inspector metrics.
//
// Metrics collected:
//   - sift_inspect_queries_total: Counter of queries by status
//   - sift_inspect_query_duration_seconds: Histogram of query evaluation time
//   - sift_inspect_query_matches: Histogram of match counts per query
//   - sift_inspect_snapshot_reads_total: Counter of snapshot reads by outcome
//   - sift_inspect_watch_events_total: Counter of snapshot change events
//   - sift_inspect_reload_clients: Gauge of connected WebSocket clients
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		queriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "queries_total",
			Help:        "Total number of selector queries evaluated",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		queryDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "query_duration_seconds",
			Help:        "Selector query evaluation time in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		queryMatches: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "query_matches",
			Help:        "Number of nodes matched per query",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{0, 1, 2, 5, 10, 25, 100},
		}),

		snapshotReads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "snapshot_reads_total",
			Help:        "Total number of snapshot reads by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		watchEvents: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "watch_events_total",
			Help:        "Total number of snapshot change events observed",
			ConstLabels: config.ConstLabels,
		}),

		reloadClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "reload_clients",
			Help:        "Number of connected WebSocket clients",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// RecordQuery records a query evaluation.
func (m *Metrics) RecordQuery(status string, seconds float64, matches int) {
	if m == nil {
		return
	}
	m.queriesTotal.WithLabelValues(status).Inc()
	m.queryDuration.Observe(seconds)
	if status == "ok" {
		m.queryMatches.Observe(float64(matches))
	}
}

// RecordSnapshotRead records a snapshot read attempt.
func (m *Metrics) RecordSnapshotRead(outcome string) {
	if m == nil {
		return
	}
	m.snapshotReads.WithLabelValues(outcome).Inc()
}

// RecordWatchEvent records a snapshot change event.
func (m *Metrics) RecordWatchEvent() {
	if m == nil {
		return
	}
	m.watchEvents.Inc()
}

// SetReloadClients records the number of connected WebSocket clients.
func (m *Metrics) SetReloadClients(n int) {
	if m == nil {
		return
	}
	m.reloadClients.Set(float64(n))
}
