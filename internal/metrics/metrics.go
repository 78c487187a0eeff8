// Package metrics provides Prometheus metrics infrastructure for the solver
// service. It exports metrics via an HTTP endpoint in Prometheus format.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsRegistry holds all application metrics and provides helper methods
// for recording various metric types.
type MetricsRegistry struct {
	registry prometheus.Registerer

	httpRequestsTotal prometheus.CounterVec
	httpErrorsTotal   prometheus.CounterVec
	solvesTotal       prometheus.CounterVec

	httpRequestDuration prometheus.HistogramVec
	solveDuration       prometheus.HistogramVec
	constraintEvalCount prometheus.HistogramVec

	activeSolves prometheus.GaugeVec
	queueDepth   prometheus.GaugeVec

	mu sync.RWMutex
}

// NewMetricsRegistry creates and registers all application metrics using the
// global default registry. It panics if any metric fails to register.
func NewMetricsRegistry() *MetricsRegistry {
	return NewMetricsRegistryWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsRegistryWithRegistry creates and registers all application
// metrics with a custom registry. Mainly used for testing. It panics if any
// metric fails to register.
func NewMetricsRegistryWithRegistry(registerer prometheus.Registerer) *MetricsRegistry {
	m := &MetricsRegistry{registry: registerer}

	m.httpRequestsTotal = *prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method and path",
		},
		[]string{"method", "path"},
	)
	m.registry.MustRegister(&m.httpRequestsTotal)

	m.httpErrorsTotal = *prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Total HTTP errors by error type",
		},
		[]string{"error_type"},
	)
	m.registry.MustRegister(&m.httpErrorsTotal)

	m.solvesTotal = *prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solves_total",
			Help: "Total solve attempts by terminal status",
		},
		[]string{"status"},
	)
	m.registry.MustRegister(&m.solvesTotal)

	m.httpRequestDuration = *prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	m.registry.MustRegister(&m.httpRequestDuration)

	m.solveDuration = *prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solve_duration_seconds",
			Help:    "Wall-clock duration of a schedule solve",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
		},
		[]string{"status"},
	)
	m.registry.MustRegister(&m.solveDuration)

	m.constraintEvalCount = *prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "constraint_evaluations_per_solve",
			Help:    "Number of constraint violations evaluated per solve",
			Buckets: []float64{0, 10, 50, 100, 500, 1000, 5000},
		},
		[]string{"constraint"},
	)
	m.registry.MustRegister(&m.constraintEvalCount)

	m.activeSolves = *prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "active_solves",
			Help: "Solves currently running",
		},
		[]string{"mode"},
	)
	m.registry.MustRegister(&m.activeSolves)

	m.queueDepth = *prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "queue_depth",
			Help: "Pending solve job queue length",
		},
		[]string{"queue_name"},
	)
	m.registry.MustRegister(&m.queueDepth)

	return m
}

// RecordHTTPRequest records an HTTP request's count and latency.
func (m *MetricsRegistry) RecordHTTPRequest(method, path string, statusCode int, duration float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.httpRequestsTotal.WithLabelValues(method, path).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, statusCodeLabel(statusCode)).Observe(duration)
}

// RecordHTTPError records an HTTP error by type.
func (m *MetricsRegistry) RecordHTTPError(errorType string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.httpErrorsTotal.WithLabelValues(errorType).Inc()
}

// RecordSolve records one completed solve attempt: its terminal status,
// wall-clock duration, and the number of violations each constraint
// evaluated along the way.
func (m *MetricsRegistry) RecordSolve(status string, duration float64, violationsByConstraint map[string]int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.solvesTotal.WithLabelValues(status).Inc()
	m.solveDuration.WithLabelValues(status).Observe(duration)
	for constraint, count := range violationsByConstraint {
		m.constraintEvalCount.WithLabelValues(constraint).Observe(float64(count))
	}
}

// IncrementActiveSolves increments the active-solve gauge for a mode
// ("sync" or "async").
func (m *MetricsRegistry) IncrementActiveSolves(mode string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.activeSolves.WithLabelValues(mode).Inc()
}

// DecrementActiveSolves decrements the active-solve gauge for a mode.
func (m *MetricsRegistry) DecrementActiveSolves(mode string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.activeSolves.WithLabelValues(mode).Dec()
}

// SetQueueDepth sets the queue depth metric to a specific value.
func (m *MetricsRegistry) SetQueueDepth(queueName string, depth int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.queueDepth.WithLabelValues(queueName).Set(float64(depth))
}

// GetHandler returns an HTTP handler that serves Prometheus metrics from
// this registry.
func (m *MetricsRegistry) GetHandler() http.Handler {
	return promhttp.HandlerFor(m.registry.(prometheus.Gatherer), promhttp.HandlerOpts{})
}

func statusCodeLabel(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

// HTTPMiddleware wraps an http.Handler, recording request metrics for every
// call.
func (m *MetricsRegistry) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		timer := prometheus.NewTimer(prometheus.ObserverFunc(func(seconds float64) {
			m.RecordHTTPRequest(r.Method, r.URL.Path, wrapped.statusCode, seconds)
		}))

		next.ServeHTTP(wrapped, r)

		timer.ObserveDuration()
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.written = true
	}
	return rw.ResponseWriter.Write(b)
}
