// Package metrics holds the Prometheus instruments of the user registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks user lifecycle outcomes, the active user gauge and HTTP traffic.
type Metrics struct {
	SuccessfulUserAdds    prometheus.Counter
	FailedUserAdds        prometheus.Counter
	SuccessfulUserDeletes prometheus.Counter
	FailedUserDeletes     prometheus.Counter
	SuccessfulUserClears  prometheus.Counter
	FailedUserClears      prometheus.Counter

	ActiveUsers       prometheus.Gauge
	SystemMemoryTotal prometheus.Gauge

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates the metrics and registers them, together with the Go runtime
// and process collectors, on reg.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		SuccessfulUserAdds: f.NewCounter(prometheus.CounterOpts{
			Name: "successful_user_adds",
			Help: "Number of successful user adds.",
		}),
		FailedUserAdds: f.NewCounter(prometheus.CounterOpts{
			Name: "failed_user_adds",
			Help: "Number of failed user adds.",
		}),
		SuccessfulUserDeletes: f.NewCounter(prometheus.CounterOpts{
			Name: "successful_user_deletes",
			Help: "Number of successful user deletes.",
		}),
		FailedUserDeletes: f.NewCounter(prometheus.CounterOpts{
			Name: "failed_user_deletes",
			Help: "Number of failed user deletes.",
		}),
		SuccessfulUserClears: f.NewCounter(prometheus.CounterOpts{
			Name: "successful_user_clears",
			Help: "Number of successful user clears.",
		}),
		FailedUserClears: f.NewCounter(prometheus.CounterOpts{
			Name: "failed_user_clears",
			Help: "Number of failed user clears.",
		}),
		ActiveUsers: f.NewGauge(prometheus.GaugeOpts{
			Name: "num_active_users",
			Help: "Number of users currently registered.",
		}),
		SystemMemoryTotal: f.NewGauge(prometheus.GaugeOpts{
			Name: "system_memory_total_bytes",
			Help: "Total physical memory of the host in bytes.",
		}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_received_total",
			Help: "Number of HTTP requests received, by status code and method.",
		}, []string{"code", "method"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests, by status code and method.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"code", "method"}),
		gatherer: reg,
	}
}

// SetActiveUsers records the current number of users.
func (m *Metrics) SetActiveUsers(n int) {
	m.ActiveUsers.Set(float64(n))
}

// SetSystemMemoryTotal records total host memory. Zero values are ignored.
func (m *Metrics) SetSystemMemoryTotal(bytes uint64) {
	if bytes == 0 {
		return
	}
	m.SystemMemoryTotal.Set(float64(bytes))
}

// Handler serves the registered metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Instrument wraps next so every request is counted and timed.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerDuration(m.HTTPDuration,
		promhttp.InstrumentHandlerCounter(m.HTTPRequests, next))
}
