package gbwt

import "github.com/prometheus/client_golang/prometheus"

// Metrics wraps the prometheus counters/histograms exposed for the four
// query entry points. Optional: a nil *Metrics (the zero value of
// Metrics is not usable, callers pass NewMetrics's result or leave query
// call sites unwrapped) never touches prometheus; wrap search calls with
// Observe* only where a caller wants query-volume/latency visibility.
type Metrics struct {
	queries  *prometheus.CounterVec
	rowsHit  prometheus.Counter
	duration *prometheus.HistogramVec
}

// NewMetrics registers the gbwt query counters/histogram on reg and
// returns a Metrics ready to wrap search calls.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gbwt",
			Name:      "queries_total",
			Help:      "Number of GBWT queries by operation.",
		}, []string{"operation"}),
		rowsHit: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gbwt",
			Name:      "locate_rows_total",
			Help:      "Number of BWT rows resolved by locate.",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gbwt",
			Name:      "query_duration_seconds",
			Help:      "Latency of GBWT query operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(m.queries, m.rowsHit, m.duration)
	return m
}

// ObserveFind records one find/prefix call and its wall-clock duration.
func (m *Metrics) ObserveFind(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(operation).Inc()
	m.duration.WithLabelValues(operation).Observe(seconds)
}

// ObserveLocate records one locate call resolving `rows` BWT positions.
func (m *Metrics) ObserveLocate(rows int, seconds float64) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues("locate").Inc()
	m.rowsHit.Add(float64(rows))
	m.duration.WithLabelValues("locate").Observe(seconds)
}

// ObserveExtract records one extract call and its wall-clock duration.
func (m *Metrics) ObserveExtract(seconds float64) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues("extract").Inc()
	m.duration.WithLabelValues("extract").Observe(seconds)
}
