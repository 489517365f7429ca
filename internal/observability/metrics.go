package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the NCEI client.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec // labels: outcome={success,http_error,envelope_error,decode_error,transport_error}
	RequestDuration prometheus.Histogram
	RowsFetched     prometheus.Counter
}

// NewMetrics creates and registers all client metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ghcnd",
			Name:      "requests_total",
			Help:      "NCEI data service requests by outcome.",
		}, []string{"outcome"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ghcnd",
			Name:      "request_duration_seconds",
			Help:      "NCEI data service request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		RowsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ghcnd",
			Name:      "rows_fetched_total",
			Help:      "Total daily-summary rows returned by the service.",
		}),
	}

	prometheus.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.RowsFetched,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RequestsTotal:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "ghcnd", Name: "requests_total"}, []string{"outcome"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "ghcnd", Name: "request_duration_seconds"}),
		RowsFetched:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "ghcnd", Name: "rows_fetched_total"}),
	}
}
