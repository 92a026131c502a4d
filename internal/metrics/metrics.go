// Package metrics holds the prometheus collectors for the scoring service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "scorebook"

// Metrics owns a private registry so several instances (tests, the admin CLI)
// never collide on registration. All methods are safe on a nil receiver.
type Metrics struct {
	registry *prometheus.Registry

	recomputeRuns     prometheus.Counter
	recomputeFailures prometheus.Counter
	recomputeDuration prometheus.Histogram
	oversSaved        prometheus.Counter
	milestonesFired   *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		recomputeRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recompute_runs_total",
			Help:      "Tournament recompute runs that committed.",
		}),
		recomputeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recompute_failures_total",
			Help:      "Tournament recompute runs that aborted.",
		}),
		recomputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recompute_duration_seconds",
			Help:      "Wall time of a tournament recompute.",
			Buckets:   prometheus.DefBuckets,
		}),
		oversSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "overs_saved_total",
			Help:      "Overs committed to a bowler's figures.",
		}),
		milestonesFired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "milestones_fired_total",
			Help:      "Milestones surfaced, by threshold label.",
		}, []string{"kind"}),
	}
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.recomputeRuns,
		m.recomputeFailures,
		m.recomputeDuration,
		m.oversSaved,
		m.milestonesFired,
	)
	return m
}

// Handler serves the /metrics scrape endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveRecompute(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.recomputeDuration.Observe(d.Seconds())
	if err != nil {
		m.recomputeFailures.Inc()
		return
	}
	m.recomputeRuns.Inc()
}

func (m *Metrics) OverSaved() {
	if m == nil {
		return
	}
	m.oversSaved.Inc()
}

func (m *Metrics) MilestoneFired(kind string) {
	if m == nil {
		return
	}
	m.milestonesFired.WithLabelValues(kind).Inc()
}
