package bidding

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector records bid placement outcomes.
type MetricsCollector interface {
	RecordBidPlaced(opening bool, duration time.Duration)
	RecordBidRejected(reason RejectionReason)
	RecordPlacementFailure()
}

// NoOpMetricsCollector discards everything.
type NoOpMetricsCollector struct{}

func (NoOpMetricsCollector) RecordBidPlaced(bool, time.Duration) {}
func (NoOpMetricsCollector) RecordBidRejected(RejectionReason)   {}
func (NoOpMetricsCollector) RecordPlacementFailure()             {}

// PrometheusMetrics implements MetricsCollector with client_golang collectors.
type PrometheusMetrics struct {
	placed   *prometheus.CounterVec
	rejected *prometheus.CounterVec
	failures prometheus.Counter
	latency  prometheus.Histogram
}

// NewPrometheusMetrics creates the collectors and registers them with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		placed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "faauction",
			Subsystem: "bidding",
			Name:      "bids_placed_total",
			Help:      "Bids accepted, by whether they opened bidding on the player.",
		}, []string{"opening"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "faauction",
			Subsystem: "bidding",
			Name:      "bids_rejected_total",
			Help:      "Bids refused by a business rule, by reason.",
		}, []string{"reason"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "faauction",
			Subsystem: "bidding",
			Name:      "placement_failures_total",
			Help:      "Bid placements that failed on infrastructure errors.",
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "faauction",
			Subsystem: "bidding",
			Name:      "placement_duration_seconds",
			Help:      "Time to validate and store an accepted bid.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.placed, m.rejected, m.failures, m.latency)
	return m
}

func (m *PrometheusMetrics) RecordBidPlaced(opening bool, duration time.Duration) {
	label := "false"
	if opening {
		label = "true"
	}
	m.placed.WithLabelValues(label).Inc()
	m.latency.Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordBidRejected(reason RejectionReason) {
	m.rejected.WithLabelValues(string(reason)).Inc()
}

func (m *PrometheusMetrics) RecordPlacementFailure() {
	m.failures.Inc()
}
