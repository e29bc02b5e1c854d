package bidfeed

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector records relay progress.
type MetricsCollector interface {
	RecordPublished()
	RecordPublishAttempt(success bool)
	RecordLag(lag int64)
}

// NoOpMetricsCollector discards everything.
type NoOpMetricsCollector struct{}

func (NoOpMetricsCollector) RecordPublished()          {}
func (NoOpMetricsCollector) RecordPublishAttempt(bool) {}
func (NoOpMetricsCollector) RecordLag(int64)           {}

// PrometheusMetrics implements MetricsCollector with client_golang collectors.
type PrometheusMetrics struct {
	published prometheus.Counter
	attempts  *prometheus.CounterVec
	lag       prometheus.Gauge
}

// NewPrometheusMetrics creates the collectors and registers them with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		published: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "faauction",
			Subsystem: "bidfeed",
			Name:      "events_published_total",
			Help:      "Bid events published to JetStream.",
		}),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "faauction",
			Subsystem: "bidfeed",
			Name:      "publish_attempts_total",
			Help:      "Publish attempts, by outcome.",
		}, []string{"status"}),
		lag: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "faauction",
			Subsystem: "bidfeed",
			Name:      "lag_bids",
			Help:      "Stored bids not yet published.",
		}),
	}
	reg.MustRegister(m.published, m.attempts, m.lag)
	return m
}

func (m *PrometheusMetrics) RecordPublished() {
	m.published.Inc()
}

func (m *PrometheusMetrics) RecordPublishAttempt(success bool) {
	status := "failure"
	if success {
		status = "success"
	}
	m.attempts.WithLabelValues(status).Inc()
}

func (m *PrometheusMetrics) RecordLag(lag int64) {
	m.lag.Set(float64(lag))
}
