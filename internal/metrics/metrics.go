// Package metrics registers Prometheus metrics for the dashboard service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the dashboard pipeline.
type Metrics struct {
	RequestsTotal  *prometheus.CounterVec // labels: sort
	CacheHitsTotal prometheus.Counter
	FetchFailures  *prometheus.CounterVec // labels: market
	CollectDur     prometheus.Histogram
	RenderDur      prometheus.Histogram
}

// New registers and returns all dashboard metrics.
func New() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "krwboard_requests_total",
			Help: "Dashboard requests served, by sort key",
		}, []string{"sort"}),
		CacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "krwboard_cache_hits_total",
			Help: "Requests answered from the rendered-page cache",
		}),
		FetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "krwboard_fetch_failures_total",
			Help: "Per-market candle fetch failures",
		}, []string{"market"}),
		CollectDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "krwboard_collect_duration_seconds",
			Help:    "Wall time of one full market fan-out",
			Buckets: prometheus.DefBuckets,
		}),
		RenderDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "krwboard_render_duration_seconds",
			Help:    "Time spent rendering the HTML document",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}

	prometheus.MustRegister(
		m.RequestsTotal,
		m.CacheHitsTotal,
		m.FetchFailures,
		m.CollectDur,
		m.RenderDur,
	)
	return m
}

// Handler exposes the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
