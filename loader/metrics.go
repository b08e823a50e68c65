package loader

import (
	"time"

	"github.com/c360studio/semowl/owl"
	"github.com/prometheus/client_golang/prometheus"
)

// Failure stages recorded in metrics.
const (
	stageRead    = "read"
	stageParse   = "parse"
	stageDecode  = "decode"
	stageImports = "imports"
)

// loadMetrics holds Prometheus metrics for ontology loading. A nil
// *loadMetrics records nothing.
type loadMetrics struct {
	loadDuration prometheus.Histogram
	axioms       *prometheus.CounterVec // By category
	rules        prometheus.Counter
	failures     *prometheus.CounterVec // By stage
}

// newLoadMetrics creates and registers load metrics with reg.
func newLoadMetrics(reg prometheus.Registerer) (*loadMetrics, error) {
	if reg == nil {
		return nil, nil // Metrics disabled
	}

	m := &loadMetrics{
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "semowl",
			Subsystem: "loader",
			Name:      "load_duration_seconds",
			Help:      "Time to read, decode and resolve an ontology file",
			Buckets:   prometheus.DefBuckets,
		}),

		axioms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "semowl",
			Subsystem: "loader",
			Name:      "axioms_decoded_total",
			Help:      "Total number of axioms decoded by category",
		}, []string{"category"}),

		rules: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "semowl",
			Subsystem: "loader",
			Name:      "rules_decoded_total",
			Help:      "Total number of SWRL rules decoded",
		}),

		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "semowl",
			Subsystem: "loader",
			Name:      "failures_total",
			Help:      "Total number of failed loads by stage",
		}, []string{"stage"}),
	}

	for _, c := range []prometheus.Collector{m.loadDuration, m.axioms, m.rules, m.failures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *loadMetrics) recordLoad(o *owl.Ontology, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.loadDuration.Observe(elapsed.Seconds())
	for category, n := range o.CountByCategory() {
		m.axioms.WithLabelValues(string(category)).Add(float64(n))
	}
	m.rules.Add(float64(len(o.Rules)))
}

func (m *loadMetrics) recordFailure(stage string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(stage).Inc()
}
