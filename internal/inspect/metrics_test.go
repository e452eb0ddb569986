package inspect

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	if m.Gauge == nil {
		t.Fatal("expected gauge metric to have Gauge field")
	}
	return m.GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetrics_RecordQuery(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	m.RecordQuery("ok", 0.01, 3)
	m.RecordQuery("ok", 0.02, 0)
	m.RecordQuery("error", 0.005, 0)

	if got := metricCounterValue(t, m.queriesTotal.WithLabelValues("ok")); got != 2 {
		t.Errorf("queries_total(ok) = %v, want 2", got)
	}
	if got := metricCounterValue(t, m.queriesTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("queries_total(error) = %v, want 1", got)
	}
	if got := metricHistogramCount(t, m.queryDuration); got != 3 {
		t.Errorf("query_duration sample count = %v, want 3", got)
	}

	// Match counts are only observed for successful queries.
	if got := metricHistogramCount(t, m.queryMatches); got != 2 {
		t.Errorf("query_matches sample count = %v, want 2", got)
	}
}

func TestMetrics_RecordSnapshotRead(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	m.RecordSnapshotRead("hit")
	m.RecordSnapshotRead("hit")
	m.RecordSnapshotRead("miss")

	if got := metricCounterValue(t, m.snapshotReads.WithLabelValues("hit")); got != 2 {
		t.Errorf("snapshot_reads_total(hit) = %v, want 2", got)
	}
	if got := metricCounterValue(t, m.snapshotReads.WithLabelValues("miss")); got != 1 {
		t.Errorf("snapshot_reads_total(miss) = %v, want 1", got)
	}
}

func TestMetrics_WatchAndClients(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	m.RecordWatchEvent()
	m.RecordWatchEvent()
	m.SetReloadClients(4)

	if got := metricCounterValue(t, m.watchEvents); got != 2 {
		t.Errorf("watch_events_total = %v, want 2", got)
	}
	if got := metricGaugeValue(t, m.reloadClients); got != 4 {
		t.Errorf("reload_clients = %v, want 4", got)
	}
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	// None of these should panic.
	m.RecordQuery("ok", 0.1, 1)
	m.RecordSnapshotRead("hit")
	m.RecordWatchEvent()
	m.SetReloadClients(1)
}

func TestMetrics_CustomNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(
		WithRegistry(reg),
		WithNamespace("custom"),
		WithSubsystem("api"),
		WithConstLabels(prometheus.Labels{"env": "test"}),
		WithBuckets([]float64{0.1, 1}),
	)
	m.RecordQuery("ok", 0.05, 1)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}

	found := false
	for _, mf := range families {
		if mf.GetName() == "custom_api_queries_total" {
			found = true
		}
	}
	if !found {
		t.Error("expected custom_api_queries_total to be registered")
	}
}
