package metrics

import (
	"net/http"
	"strconv"
	"time"

	"bulk-cleanup/internal/domain/record"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cleanup"

// Metrics owns a private registry so repeated construction in tests never
// collides with the global one.
type Metrics struct {
	registry  *prometheus.Registry
	scanned   *prometheus.CounterVec
	matched   *prometheus.CounterVec
	deletions *prometheus.CounterVec
	batches   *prometheus.HistogramVec
	requests  *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		scanned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_scanned_total",
			Help:      "Records read while scanning, by kind.",
		}, []string{"kind"}),
		matched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_matched_total",
			Help:      "Records queued for deletion while scanning, by kind.",
		}, []string{"kind"}),
		deletions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deletions_total",
			Help:      "Per-record deletion attempts, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		batches: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Duration of scan and deletion batches.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
		}, []string{"action"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status.",
		}, []string{"route", "method", "status"}),
	}
	m.registry.MustRegister(m.scanned, m.matched, m.deletions, m.batches, m.requests)
	m.registry.MustRegister(collectors.NewGoCollector())
	return m
}

func (m *Metrics) ObserveScanPage(kind record.Kind, scanned, matched int) {
	m.scanned.WithLabelValues(kind.String()).Add(float64(scanned))
	m.matched.WithLabelValues(kind.String()).Add(float64(matched))
}

func (m *Metrics) ObserveDeletion(kind record.Kind, outcome string) {
	m.deletions.WithLabelValues(kind.String(), outcome).Inc()
}

func (m *Metrics) ObserveBatchDuration(action string, d time.Duration) {
	m.batches.WithLabelValues(action).Observe(d.Seconds())
}

func (m *Metrics) ObserveRequest(route, method string, status int) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the collectors for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
