package observe

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "outdoor_advisor"

// Metrics holds the Prometheus collectors shared by repositories and services.
type Metrics struct {
	UpstreamRequests *prometheus.CounterVec   // labels: source, outcome={success,error}
	UpstreamDuration *prometheus.HistogramVec // labels: source
	ProxyCache       *prometheus.CounterVec   // labels: result={hit,miss,store}
	ProxyCacheSize   prometheus.Gauge
	Advice           *prometheus.CounterVec // labels: regime, outcome={ok,no_forecast,error}
	Suggestions      prometheus.Histogram
}

func newMetrics() *Metrics {
	return &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Upstream API requests by source and outcome.",
		}, []string{"source", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"source"}),
		ProxyCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proxy_cache_total",
			Help:      "Climatology proxy cache lookups and stores.",
		}, []string{"result"}),
		ProxyCacheSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "proxy_cache_entries",
			Help:      "Entries currently held by the climatology proxy cache.",
		}),
		Advice: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advice_requests_total",
			Help:      "Advice requests by date regime and outcome.",
		}, []string{"regime", "outcome"}),
		Suggestions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "activity_suggestions",
			Help:      "Number of activities suggested per advice.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 6},
		}),
	}
}

// NewMetrics creates the collectors and registers them with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.ProxyCache,
		m.ProxyCacheSize,
		m.Advice,
		m.Suggestions,
	)

	return m
}

// NewMetricsForTesting creates unregistered collectors so tests can build
// as many as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
