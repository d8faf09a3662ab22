package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// OutcomeOK labels a scan that produced a populated result.
	OutcomeOK = "ok"
	// OutcomeError labels a scan that produced the failure variant.
	OutcomeError = "error"
)

// Metrics holds the service's Prometheus instruments on a private registry.
type Metrics struct {
	registry     *prometheus.Registry
	scansTotal   *prometheus.CounterVec
	scanDuration prometheus.Histogram
	analyses     prometheus.Counter
	plans        prometheus.Counter
}

// New registers the service instruments along with the standard Go and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		scansTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bizboost_scans_total",
			Help: "Total site scans by outcome.",
		}, []string{"outcome"}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bizboost_scan_duration_seconds",
			Help:    "Wall-clock duration of a single site scan.",
			Buckets: prometheus.DefBuckets,
		}),
		analyses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bizboost_analyses_total",
			Help: "Total competitive analysis requests processed.",
		}),
		plans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bizboost_plans_total",
			Help: "Total one-page plans generated.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.scansTotal,
		m.scanDuration,
		m.analyses,
		m.plans,
	)

	return m
}

// ObserveScan records one completed scan.
func (m *Metrics) ObserveScan(outcome string, d time.Duration) {
	m.scansTotal.WithLabelValues(outcome).Inc()
	m.scanDuration.Observe(d.Seconds())
}

// IncAnalyses records one handled analysis request.
func (m *Metrics) IncAnalyses() { m.analyses.Inc() }

// IncPlans records one generated plan.
func (m *Metrics) IncPlans() { m.plans.Inc() }

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
