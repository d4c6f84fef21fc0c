// Package telemetry holds the Prometheus collectors and the OpenTelemetry
// tracer used around ladder searches.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName names the tracer for search spans.
const TracerName = "github.com/katalvlaran/wordladder"

// Search outcomes, used as the "outcome" label.
const (
	OutcomeFound        = "found"
	OutcomeNoLadder     = "no_ladder"
	OutcomeWordNotFound = "word_not_found"
	OutcomeSameWord     = "same_word"
	OutcomeCanceled     = "canceled"
	OutcomeError        = "error"
)

// Metrics are the search collectors, registered on one registry.
type Metrics struct {
	searches    *prometheus.CounterVec
	duration    prometheus.Histogram
	length      prometheus.Histogram
	expanded    prometheus.Histogram
	tableWords  prometheus.Gauge
	loadSeconds prometheus.Histogram
}

// NewMetrics registers the collectors on reg. Registering twice on the same
// registry panics, as with promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordladder_searches_total",
			Help: "Ladder searches by outcome",
		}, []string{"outcome"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordladder_search_duration_seconds",
			Help:    "Ladder search duration",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
		}),
		length: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordladder_ladder_length",
			Help:    "Words in each ladder found",
			Buckets: []float64{2, 3, 4, 5, 6, 8, 10, 15, 20},
		}),
		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordladder_expanded_ladders",
			Help:    "Ladders dequeued per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		tableWords: f.NewGauge(prometheus.GaugeOpts{
			Name: "wordladder_table_words",
			Help: "Words in the loaded table",
		}),
		loadSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordladder_dictionary_load_seconds",
			Help:    "Dictionary load duration",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10},
		}),
	}
}

// ObserveSearch records one search. length and expanded are only observed
// when the search ran (found or no ladder).
func (m *Metrics) ObserveSearch(outcome string, d time.Duration, length, expanded int) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(outcome).Inc()
	m.duration.Observe(d.Seconds())
	switch outcome {
	case OutcomeFound:
		m.length.Observe(float64(length))
		m.expanded.Observe(float64(expanded))
	case OutcomeNoLadder:
		m.expanded.Observe(float64(expanded))
	}
}

// ObserveLoad records a dictionary load.
func (m *Metrics) ObserveLoad(words int, d time.Duration) {
	if m == nil {
		return
	}
	m.tableWords.Set(float64(words))
	m.loadSeconds.Observe(d.Seconds())
}

// Searches returns the per-outcome counter, for tests and reporting, or
// nil on a nil receiver.
func (m *Metrics) Searches() *prometheus.CounterVec {
	if m == nil {
		return nil
	}
	return m.searches
}

// Tracer returns the global tracer for search spans. Without an installed
// TracerProvider it is a no-op.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// WriteTextfile dumps every metric gathered by g to path in the Prometheus
// text exposition format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
