package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all custom Prometheus metrics for the pipeline
type Metrics struct {
	// Sentiment analyses by document kind ("event"/"journal") and label
	Analyses *prometheus.CounterVec

	// Trigger invocations that ended in a swallowed error, by collection and op
	TriggerFailures *prometheus.CounterVec

	// Journal updates short-circuited because title+body was unchanged
	SkippedJournalUpdates prometheus.Counter

	// Recommendation recompute latency
	RecommendationLatency prometheus.Histogram
}

var globalMetrics *Metrics

// InitMetrics initializes the Prometheus metrics
func InitMetrics() *Metrics {
	metrics := &Metrics{
		Analyses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "solace_sentiment_analyses_total",
			Help: "Total number of sentiment analyses by document kind and resulting label",
		}, []string{"kind", "label"}),

		TriggerFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "solace_trigger_failures_total",
			Help: "Total number of trigger invocations that failed (errors are logged and swallowed)",
		}, []string{"collection", "op"}),

		SkippedJournalUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "solace_journal_updates_skipped_total",
			Help: "Total number of journal updates skipped because content was unchanged",
		}),

		RecommendationLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "solace_recommendation_recompute_duration_seconds",
			Help:    "Recommendation recompute latency in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}),
	}

	globalMetrics = metrics
	return metrics
}

// GetMetrics returns the global metrics instance
func GetMetrics() *Metrics {
	return globalMetrics
}

// RecordAnalysis records a completed sentiment analysis.
// Nil-safe so engines can run without metrics in tests.
func (m *Metrics) RecordAnalysis(kind, label string) {
	if m == nil {
		return
	}
	m.Analyses.WithLabelValues(kind, label).Inc()
}

// RecordTriggerFailure records a swallowed trigger error
func (m *Metrics) RecordTriggerFailure(collection, op string) {
	if m == nil {
		return
	}
	m.TriggerFailures.WithLabelValues(collection, op).Inc()
}

// RecordSkippedJournalUpdate records a content-unchanged short circuit
func (m *Metrics) RecordSkippedJournalUpdate() {
	if m == nil {
		return
	}
	m.SkippedJournalUpdates.Inc()
}

// RecordRecommendationLatency records recommendation recompute latency
func (m *Metrics) RecordRecommendationLatency(seconds float64) {
	if m == nil {
		return
	}
	m.RecommendationLatency.Observe(seconds)
}
