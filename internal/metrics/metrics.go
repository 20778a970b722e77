package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics aggregates the Prometheus instrumentation of the solving pipeline.
// Each instance owns its own registry, so tests and batch runs never collide
// on the global default registry.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	solvesTotal   *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	unclaimed     prometheus.Counter
	activeSolves  prometheus.Gauge
	solveDuration *prometheus.HistogramVec
}

// NewMetrics creates a Metrics instance with all collectors registered,
// including the Go runtime collector.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry: registry,
		solvesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stepsolve_solves_total",
			Help: "Total solved inputs by solver and solution type.",
		}, []string{"solver", "type"}),
		errorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stepsolve_solve_errors_total",
			Help: "Total error-tagged solutions by solution type.",
		}, []string{"type"}),
		unclaimed: factory.NewCounter(prometheus.CounterOpts{
			Name: "stepsolve_unclaimed_inputs_total",
			Help: "Total inputs no registered solver claimed.",
		}),
		activeSolves: factory.NewGauge(prometheus.GaugeOpts{
			Name: "stepsolve_active_solves",
			Help: "Number of solve calls currently in flight.",
		}),
		solveDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stepsolve_solve_duration_seconds",
			Help:    "Wall-clock duration of solve calls by solver.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"solver"}),
	}

	registry.MustRegister(collectors.NewGoCollector())
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveSolves marks a solve call as in flight.
func (m *Metrics) IncrementActiveSolves() {
	m.activeSolves.Inc()
}

// DecrementActiveSolves marks a solve call as completed.
func (m *Metrics) DecrementActiveSolves() {
	m.activeSolves.Dec()
}

// ObserveSolve records one completed solve: its dispatching solver, the
// resulting solution type, whether the solution carries an error tag, and
// the wall-clock duration.
func (m *Metrics) ObserveSolve(solver, solutionType string, isError bool, duration time.Duration) {
	m.solvesTotal.WithLabelValues(solver, solutionType).Inc()
	if isError {
		m.errorsTotal.WithLabelValues(solutionType).Inc()
	}
	m.solveDuration.WithLabelValues(solver).Observe(duration.Seconds())
}

// ObserveUnclaimed records an input no solver claimed.
func (m *Metrics) ObserveUnclaimed() {
	m.unclaimed.Inc()
}

// WritePrometheus serves the registry in Prometheus text exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// Registry exposes the underlying registry, for summaries that gather
// metric families without going through HTTP.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
