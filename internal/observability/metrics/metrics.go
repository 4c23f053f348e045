// Package metrics provides Prometheus metrics for the pricing pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "energysim"

// Collector holds the pipeline metrics. A nil *Collector records nothing.
type Collector struct {
	registry *prometheus.Registry

	// Tariff cache
	CacheLookups *prometheus.CounterVec

	// Tariff fetches
	FetchAttempts *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec

	// Imports
	RecordsPriced *prometheus.CounterVec
	RecordErrors  *prometheus.CounterVec
	ImportsTotal  *prometheus.CounterVec

	// HTTP
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates a collector registered on reg. A nil reg gets a fresh registry.
func New(reg *prometheus.Registry) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tariff_cache_lookups_total",
				Help:      "Tariff cache lookups by energy and outcome (hit, miss, shared)",
			},
			[]string{"energy", "outcome"},
		),
		FetchAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tariff_fetch_attempts_total",
				Help:      "Tariff provider calls by energy and result",
			},
			[]string{"energy", "result"},
		),
		FetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "tariff_fetch_duration_seconds",
				Help:      "Tariff provider call duration in seconds",
				Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"energy"},
		),
		RecordsPriced: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_priced_total",
				Help:      "Priced records by energy and contract",
			},
			[]string{"energy", "contract"},
		),
		RecordErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "record_errors_total",
				Help:      "Per-record failures by kind",
			},
			[]string{"energy", "kind"},
		),
		ImportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "imports_total",
				Help:      "Completed imports by energy and contract",
			},
			[]string{"energy", "contract"},
		),
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .05, .1, .5, 1, 5, 10, 30, 60},
			},
			[]string{"method", "route"},
		),
	}
}

// Handler serves the collector's registry.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// CacheLookup records a tariff cache lookup.
func (c *Collector) CacheLookup(energy, outcome string) {
	if c == nil {
		return
	}
	c.CacheLookups.WithLabelValues(energy, outcome).Inc()
}

// FetchAttempt records one provider call.
func (c *Collector) FetchAttempt(energy, result string, seconds float64) {
	if c == nil {
		return
	}
	c.FetchAttempts.WithLabelValues(energy, result).Inc()
	c.FetchDuration.WithLabelValues(energy).Observe(seconds)
}

// RecordPriced counts a successfully priced record.
func (c *Collector) RecordPriced(energy, contract string) {
	if c == nil {
		return
	}
	c.RecordsPriced.WithLabelValues(energy, contract).Inc()
}

// RecordFailed counts a per-record failure.
func (c *Collector) RecordFailed(energy, kind string) {
	if c == nil {
		return
	}
	c.RecordErrors.WithLabelValues(energy, kind).Inc()
}

// ImportCompleted counts a finished import.
func (c *Collector) ImportCompleted(energy, contract string) {
	if c == nil {
		return
	}
	c.ImportsTotal.WithLabelValues(energy, contract).Inc()
}

// Request records one HTTP request.
func (c *Collector) Request(method, route, status string, seconds float64) {
	if c == nil {
		return
	}
	c.RequestsTotal.WithLabelValues(method, route, status).Inc()
	c.RequestDuration.WithLabelValues(method, route).Observe(seconds)
}
