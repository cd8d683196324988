// Package metrics exposes Prometheus counters for served games.
// All methods are safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Metrics holds the collectors for one process.
type Metrics struct {
	registry *prometheus.Registry

	ActiveSessions    prometheus.Gauge
	SessionsTotal     prometheus.Counter
	GamesStarted      prometheus.Counter
	GamesCompleted    prometheus.Counter
	PairsMatched      prometheus.Counter
	Mismatches        prometheus.Counter
	CompletionSeconds prometheus.Histogram
}

// New creates the collectors under namespace and registers them on a
// private registry.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of connected SSH sessions",
		}),
		SessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Total number of SSH sessions",
		}),
		GamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Total number of boards dealt",
		}),
		GamesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_completed_total",
			Help:      "Total number of boards with every pair found",
		}),
		PairsMatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pairs_matched_total",
			Help:      "Total number of matching pairs flipped",
		}),
		Mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mismatches_total",
			Help:      "Total number of flipped pairs that did not match",
		}),
		CompletionSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "completion_seconds",
			Help:      "Final score (elapsed seconds) of completed games",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 8),
		}),
	}

	m.registry.MustRegister(
		m.ActiveSessions,
		m.SessionsTotal,
		m.GamesStarted,
		m.GamesCompleted,
		m.PairsMatched,
		m.Mismatches,
		m.CompletionSeconds,
	)

	return m
}

// Registry returns the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.ActiveSessions.Inc()
	m.SessionsTotal.Inc()
}

func (m *Metrics) SessionEnded() {
	if m == nil {
		return
	}
	m.ActiveSessions.Dec()
}

func (m *Metrics) GameStarted() {
	if m == nil {
		return
	}
	m.GamesStarted.Inc()
}

// ObserveStep records what a frame resolved.
func (m *Metrics) ObserveStep(res core.StepResult) {
	if m == nil {
		return
	}
	if res.Matched > 0 {
		m.PairsMatched.Add(float64(res.Matched))
	}
	if res.Mismatched > 0 {
		m.Mismatches.Add(float64(res.Mismatched))
	}
	if res.Finished {
		m.GamesCompleted.Inc()
		m.CompletionSeconds.Observe(float64(res.State.Score))
	}
}
