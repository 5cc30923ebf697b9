package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records dashboard operation metrics with Prometheus.
type Recorder struct {
	fetchTotal    *prometheus.CounterVec
	fetchErrors   *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	chartsDrawn   *prometheus.CounterVec
	lastFetch     *prometheus.GaugeVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edgefinder_engine_fetches_total",
				Help: "Total number of requests issued to the analytics engine",
			},
			[]string{"endpoint"},
		),
		fetchErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edgefinder_engine_fetch_errors_total",
				Help: "Engine fetches that failed, by error kind",
			},
			[]string{"endpoint", "kind"},
		),
		fetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "edgefinder_engine_fetch_duration_seconds",
				Help:    "Duration of engine fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		chartsDrawn: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edgefinder_charts_rendered_total",
				Help: "Charts rendered, by chart kind",
			},
			[]string{"chart"},
		),
		lastFetch: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "edgefinder_engine_last_fetch_unix",
				Help: "Unix timestamp of the last successful fetch per endpoint",
			},
			[]string{"endpoint"},
		),
	}
}

// RecordFetch records an issued engine request.
func (r *Recorder) RecordFetch(endpoint string) {
	r.fetchTotal.WithLabelValues(endpoint).Inc()
}

// RecordFetchError records a failed engine request.
func (r *Recorder) RecordFetchError(endpoint, kind string) {
	r.fetchErrors.WithLabelValues(endpoint, kind).Inc()
}

// RecordFetchDuration records engine request latency in seconds.
func (r *Recorder) RecordFetchDuration(endpoint string, seconds float64) {
	r.fetchDuration.WithLabelValues(endpoint).Observe(seconds)
}

// RecordFetchSuccess marks a successful fetch at the given unix time.
func (r *Recorder) RecordFetchSuccess(endpoint string, unix float64) {
	r.lastFetch.WithLabelValues(endpoint).Set(unix)
}

// RecordChart records one rendered chart.
func (r *Recorder) RecordChart(chart string) {
	r.chartsDrawn.WithLabelValues(chart).Inc()
}
