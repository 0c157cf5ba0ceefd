package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal   *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	chartsRendered *prometheus.CounterVec
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendmatrix_fetches_total",
				Help: "Total number of metric fetches per source and series kind",
			},
			[]string{"source", "kind"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendmatrix_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		chartsRendered: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendmatrix_charts_rendered_total",
				Help: "Total number of charts rendered per chart kind",
			},
			[]string{"kind"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trendmatrix_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordFetch records a completed fetch against a metric source.
func (r *Recorder) RecordFetch(source, kind string) {
	r.fetchesTotal.WithLabelValues(source, kind).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordRenderedChart records a rendered chart.
func (r *Recorder) RecordRenderedChart(kind string) {
	r.chartsRendered.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
