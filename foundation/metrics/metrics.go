// Package metrics constructs the prometheus collectors for the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics maintains the set of collectors published by the service.
type Metrics struct {
	registry *prometheus.Registry

	Requests  *prometheus.CounterVec
	Durations *prometheus.HistogramVec
	Errors    prometheus.Counter
	Panics    prometheus.Counter
}

// New constructs the metrics for capturing request activity.
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	m := Metrics{
		registry: registry,

		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of requests handled.",
			},
			[]string{"method", "path", "status"},
		),

		Durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		Errors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Total number of requests that resulted in an error.",
			},
		),

		Panics: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "panics_total",
				Help:      "Total number of requests that resulted in a panic.",
			},
		),
	}

	registry.MustRegister(
		m.Requests,
		m.Durations,
		m.Errors,
		m.Panics,
		collectors.NewGoCollector(),
	)

	return &m
}

// Handler returns the http handler that exposes the registered collectors.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
