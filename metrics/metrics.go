// Package metrics exposes tournament progress counters to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dominoes"

// TournamentMetrics is the recorder the tournament service reports to.
type TournamentMetrics interface {
	RoundGenerated(model string)
	MatchesScored(model string, n int)
	ChampionCrowned(model string)
	ObserveAdvance(model string, d time.Duration)
}

type prometheusMetrics struct {
	rounds    *prometheus.CounterVec
	scored    *prometheus.CounterVec
	champions *prometheus.CounterVec
	advance   *prometheus.HistogramVec
}

// NewPrometheus registers the tournament collectors on reg.
func NewPrometheus(reg prometheus.Registerer) (TournamentMetrics, error) {
	m := &prometheusMetrics{
		rounds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_generated_total",
			Help:      "Rounds appended by the bracket engine.",
		}, []string{"model"}),
		scored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_scored_total",
			Help:      "Matches completed through score resolution.",
		}, []string{"model"}),
		champions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "champions_total",
			Help:      "Tournaments decided.",
		}, []string{"model"}),
		advance: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "advance_duration_seconds",
			Help:      "Time spent computing the next round.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"model"}),
	}
	for _, c := range []prometheus.Collector{m.rounds, m.scored, m.champions, m.advance} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *prometheusMetrics) RoundGenerated(model string) {
	m.rounds.WithLabelValues(model).Inc()
}

func (m *prometheusMetrics) MatchesScored(model string, n int) {
	if n > 0 {
		m.scored.WithLabelValues(model).Add(float64(n))
	}
}

func (m *prometheusMetrics) ChampionCrowned(model string) {
	m.champions.WithLabelValues(model).Inc()
}

func (m *prometheusMetrics) ObserveAdvance(model string, d time.Duration) {
	m.advance.WithLabelValues(model).Observe(d.Seconds())
}

// Nop discards everything.
type Nop struct{}

func (Nop) RoundGenerated(string)                {}
func (Nop) MatchesScored(string, int)            {}
func (Nop) ChampionCrowned(string)               {}
func (Nop) ObserveAdvance(string, time.Duration) {}
