package index

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the counters and gauges exposed for an Index, grouped
// by concern the way pkg/api/metrics.go groups HTTP/DB/auth metrics.
// Each Metrics owns its own registry rather than registering against
// prometheus.DefaultRegisterer, so a process (or a test binary) can
// construct more than one Index without promauto panicking on a
// duplicate collector name.
type Metrics struct {
	registry      *prometheus.Registry
	opsTotal      *prometheus.CounterVec
	opDuration    *prometheus.HistogramVec
	treeHeight    prometheus.Gauge
	nodeBudget    prometheus.Gauge
	budgetExhaust prometheus.Counter
}

// NewMetrics builds a fresh Metrics set against its own registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		opsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gobpt_index_ops_total",
			Help: "Total index operations by kind and outcome.",
		}, []string{"op", "outcome"}),
		opDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gobpt_index_op_duration_seconds",
			Help:    "Latency of index operations by kind.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		treeHeight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "gobpt_index_tree_height",
			Help: "Current height of the underlying B+ tree.",
		}),
		nodeBudget: factory.NewGauge(prometheus.GaugeOpts{
			Name: "gobpt_index_node_count",
			Help: "Current number of allocated tree nodes.",
		}),
		budgetExhaust: factory.NewCounter(prometheus.CounterOpts{
			Name: "gobpt_index_node_budget_exhausted_total",
			Help: "Count of operations rejected by ErrNodeBudgetExhausted.",
		}),
	}
}

// Registry exposes the registry this Metrics set is registered
// against, for pkg/api to serve at /metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) observe(op string, outcomeLabel string, seconds float64) {
	m.opsTotal.WithLabelValues(op, outcomeLabel).Inc()
	m.opDuration.WithLabelValues(op).Observe(seconds)
}
