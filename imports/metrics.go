package imports

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// fetchMetrics holds Prometheus metrics for import fetching. A nil
// *fetchMetrics records nothing.
type fetchMetrics struct {
	fetches       *prometheus.CounterVec // By outcome (fetched/library/error)
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
	fetchDuration prometheus.Histogram
}

// newFetchMetrics creates and registers fetch metrics with reg.
func newFetchMetrics(reg prometheus.Registerer) (*fetchMetrics, error) {
	if reg == nil {
		return nil, nil // Metrics disabled
	}

	m := &fetchMetrics{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "semowl",
			Subsystem: "imports",
			Name:      "fetches_total",
			Help:      "Total number of import fetches by outcome",
		}, []string{"outcome"}),

		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "semowl",
			Subsystem: "imports",
			Name:      "cache_hits_total",
			Help:      "Total number of imports served from the cache",
		}),

		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "semowl",
			Subsystem: "imports",
			Name:      "cache_misses_total",
			Help:      "Total number of imports not found in the cache",
		}),

		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "semowl",
			Subsystem: "imports",
			Name:      "fetch_duration_seconds",
			Help:      "Import fetch duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}),
	}

	for _, c := range []prometheus.Collector{m.fetches, m.cacheHits, m.cacheMisses, m.fetchDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *fetchMetrics) recordFetch(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(outcome).Inc()
	m.fetchDuration.Observe(elapsed.Seconds())
}

func (m *fetchMetrics) recordCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheHits.Inc()
	} else {
		m.cacheMisses.Inc()
	}
}
