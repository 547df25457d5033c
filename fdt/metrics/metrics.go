// Package metrics wraps the prometheus counters and histograms the fdt
// parser reports. A nil Registry is a no-op: the core never requires
// Prometheus to be present in order to function.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry bundles the fdt collectors behind one registration point.
type Registry struct {
	InitTotal        prometheus.Counter
	InitDuration     prometheus.Histogram
	NodesParsed      prometheus.Histogram
	PropertiesParsed prometheus.Histogram
	QueryTotal       *prometheus.CounterVec
}

// New creates collectors and registers them against reg. If reg is nil,
// the returned Registry's methods are safe no-ops.
func New(reg prometheus.Registerer) *Registry {
	if reg == nil {
		return nil
	}
	r := &Registry{
		InitTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fdt_init_total",
			Help: "Total number of successful Init/InitStatic calls.",
		}),
		InitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fdt_init_duration_seconds",
			Help:    "Wall-clock duration of Init/InitStatic calls.",
			Buckets: prometheus.DefBuckets,
		}),
		NodesParsed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fdt_nodes_parsed",
			Help:    "Number of nodes parsed per Init call.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}),
		PropertiesParsed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fdt_properties_parsed",
			Help:    "Number of properties parsed per Init call.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}),
		QueryTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fdt_query_total",
			Help: "Total number of query-engine calls by operation.",
		}, []string{"op"}),
	}
	reg.MustRegister(r.InitTotal, r.InitDuration, r.NodesParsed, r.PropertiesParsed, r.QueryTotal)
	return r
}

// ObserveQuery increments the query counter for op. Safe to call on a nil
// Registry.
func (r *Registry) ObserveQuery(op string) {
	if r == nil {
		return
	}
	r.QueryTotal.WithLabelValues(op).Inc()
}
