// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the HTTP and diagnostic collectors.
type Metrics struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	probeOutcomes   *prometheus.CounterVec
	gatherer        prometheus.Gatherer
}

// New creates the collectors and registers them on a fresh registry
// labelled with the service name.
func New(serviceName string) (*Metrics, error) {
	if serviceName == "" {
		return nil, fmt.Errorf("service name is required")
	}
	reg := prometheus.NewRegistry()

	labels := prometheus.Labels{"service": serviceName}
	m := &Metrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: labels,
			},
			[]string{"method", "path", "status"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: labels,
			},
			[]string{"method", "path", "status"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_errors_total",
				Help:        "Total number of HTTP errors",
				ConstLabels: labels,
			},
			[]string{"method", "path", "status"},
		),
		probeOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "diagnostic_probe_outcomes_total",
				Help:        "Database probe outcomes by status",
				ConstLabels: labels,
			},
			[]string{"status"},
		),
		gatherer: reg,
	}

	for _, c := range []prometheus.Collector{
		m.requestDuration,
		m.requestsTotal,
		m.errorsTotal,
		m.probeOutcomes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}
	return m, nil
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, path string, status int, seconds float64) {
	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}
	m.requestDuration.With(labels).Observe(seconds)
	m.requestsTotal.With(labels).Inc()
	if status >= http.StatusBadRequest {
		m.errorsTotal.With(labels).Inc()
	}
}

// ObserveProbe counts one diagnostic probe outcome.
func (m *Metrics) ObserveProbe(status string) {
	m.probeOutcomes.WithLabelValues(status).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Gatherer exposes the registry, mostly for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.gatherer
}
