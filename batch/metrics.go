package batch

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values for searches_total.
const (
	resultFound     = "found"
	resultNotFound  = "not_found"
	resultTruncated = "truncated"
	resultError     = "error"
)

// Metrics groups the Prometheus collectors fed by Run.
type Metrics struct {
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	cost     prometheus.Histogram
	duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// Registering twice on the same registry returns an error.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "routeplanner_searches_total",
			Help: "Total searches by result",
		}, []string{"result"}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "routeplanner_expanded_nodes",
			Help:    "Nodes extracted from the open set per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		cost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "routeplanner_path_cost",
			Help:    "Accumulated cost of found routes",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "routeplanner_search_duration_seconds",
			Help:    "Wall time per search",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
	}
	for _, c := range []prometheus.Collector{m.searches, m.expanded, m.cost, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("batch: register metrics: %w", err)
		}
	}

	return m, nil
}

// Observe records one outcome.
func (m *Metrics) Observe(o Outcome) {
	switch {
	case o.Err != nil:
		m.searches.WithLabelValues(resultError).Inc()
		return
	case o.Result.Found:
		m.searches.WithLabelValues(resultFound).Inc()
		m.cost.Observe(float64(o.Result.Cost))
	case o.Result.Truncated:
		m.searches.WithLabelValues(resultTruncated).Inc()
	default:
		m.searches.WithLabelValues(resultNotFound).Inc()
	}
	m.expanded.Observe(float64(o.Result.Expanded))
	m.duration.Observe(o.Duration.Seconds())
}

// WriteTextfile dumps everything gathered by g to path in the Prometheus
// text format, for node_exporter's textfile collector or offline review.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("batch: write metrics %s: %w", path, err)
	}

	return nil
}
