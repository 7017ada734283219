// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the portal's collectors on a private prometheus registry.
type Registry struct {
	reg *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RateLimited     prometheus.Counter
	EventsPublished *prometheus.CounterVec
	EventsRecorded  *prometheus.CounterVec
}

func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_http_requests_total",
				Help: "HTTP requests by route and status code",
			},
			[]string{"route", "method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portal_http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"route", "method"},
		),
		RateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "portal_http_rate_limited_total",
				Help: "Requests rejected by the rate limiter",
			},
		),
		EventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_events_published_total",
				Help: "Domain events handed to the queue by topic and result",
			},
			[]string{"topic", "result"},
		),
		EventsRecorded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_events_recorded_total",
				Help: "Domain events written to the event log by topic and result",
			},
			[]string{"topic", "result"},
		),
	}

	r.reg.MustRegister(
		r.RequestsTotal,
		r.RequestDuration,
		r.RateLimited,
		r.EventsPublished,
		r.EventsRecorded,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Handler serves the registry in the prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry, mostly for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveEventPublished is nil-safe so callers can run without metrics.
func (r *Registry) ObserveEventPublished(topic string, err error) {
	if r == nil {
		return
	}
	r.EventsPublished.WithLabelValues(topic, result(err)).Inc()
}

func (r *Registry) ObserveEventRecorded(topic string, err error) {
	if r == nil {
		return
	}
	r.EventsRecorded.WithLabelValues(topic, result(err)).Inc()
}
