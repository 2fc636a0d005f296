// Package telemetry exposes Prometheus metrics for the review pipeline.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	reviewsTotal    *prometheus.CounterVec
	reviewDuration  prometheus.Histogram
	findingsTotal   *prometheus.CounterVec
	llmCallsTotal   *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates and registers all collectors on a fresh registry.
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry: reg,
		reviewsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "blog_checker",
			Name:        "reviews_total",
			Help:        "Document reviews processed, by outcome.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		reviewDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "blog_checker",
			Name:        "review_duration_seconds",
			Help:        "Time spent reviewing a single document.",
			Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
		findingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "blog_checker",
			Name:        "findings_total",
			Help:        "Rule findings flagged in documents, by check.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"check"}),
		llmCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "blog_checker",
			Name:        "llm_calls_total",
			Help:        "Paragraph classification calls, by outcome.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "blog_checker",
			Name:        "http_requests_total",
			Help:        "HTTP requests served, by method, path and status code.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "blog_checker",
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency, by method and path.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path"}),
	}

	reg.MustRegister(m.reviewsTotal, m.reviewDuration, m.findingsTotal,
		m.llmCallsTotal, m.requestsTotal, m.requestDuration)
	return m
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveReview records one completed review and its duration.
func (m *Metrics) ObserveReview(status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.reviewsTotal.WithLabelValues(status).Inc()
	m.reviewDuration.Observe(elapsed.Seconds())
}

// AddFindings records rule findings for a named check.
func (m *Metrics) AddFindings(check string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.findingsTotal.WithLabelValues(check).Add(float64(n))
}

// ObserveLLMCall records one classifier call.
func (m *Metrics) ObserveLLMCall(status string) {
	if m == nil {
		return
	}
	m.llmCallsTotal.WithLabelValues(status).Inc()
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
