// Package metrics provides Prometheus metrics for the OctoFit tracker API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every collector exposed by the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Resource traffic
	resourceReads     *prometheus.CounterVec
	payloadsEchoed    *prometheus.CounterVec
	malformedPayloads *prometheus.CounterVec

	// Errors
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec

	// Runtime
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

var globalManager *Manager //nolint:gochecknoglobals // singleton used by package-level helpers

// Private registry so /healthz exposes only service metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // registry backing globalManager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "octofit",
		subsystem:        "api",
		histogramBuckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500},
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = m.counterVec("http_requests_total",
		"Total number of HTTP requests by endpoint, method and status code",
		"endpoint", "method", "status_code")

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.resourceReads = m.counterVec("resource_reads_total",
		"Collections served on read routes", "resource")

	m.payloadsEchoed = m.counterVec("payloads_echoed_total",
		"Write payloads accepted and echoed back", "resource")

	m.malformedPayloads = m.counterVec("malformed_payloads_total",
		"Write payloads rejected as invalid JSON", "resource")

	m.errorRateByType = m.counterVec("errors_by_type_total",
		"Errors by type and severity", "error_type", "severity")

	m.errorRateByEndpoint = m.counterVec("errors_by_endpoint_total",
		"Errors by endpoint, method and type", "endpoint", "method", "error_type")

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_memory_usage_bytes",
		Help:        "Heap bytes allocated",
		ConstLabels: m.constLabels,
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_goroutine_count",
		Help:        "Number of goroutines",
		ConstLabels: m.constLabels,
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "system_gc_pause_time_milliseconds",
		Help:        "Average GC pause time in milliseconds",
		Buckets:     []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		ConstLabels: m.constLabels,
	})
}

// RecordHTTPRequest records one request and its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordError records an error response.
func (m *Manager) RecordError(endpoint, method, errorType, severity string) {
	m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	m.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordResourceRead counts a collection served for resource.
func (m *Manager) RecordResourceRead(resource string) {
	m.resourceReads.WithLabelValues(resource).Inc()
}

// RecordPayloadEchoed counts an accepted write for resource.
func (m *Manager) RecordPayloadEchoed(resource string) {
	m.payloadsEchoed.WithLabelValues(resource).Inc()
}

// RecordMalformedPayload counts a write rejected as invalid JSON.
func (m *Manager) RecordMalformedPayload(resource string) {
	m.malformedPayloads.WithLabelValues(resource).Inc()
}

// UpdateSystem sets the runtime gauges and observes the average GC pause.
func (m *Manager) UpdateSystem(allocBytes uint64, goroutines int, avgGCPauseMs float64) {
	m.systemMemoryUsage.Set(float64(allocBytes))
	m.systemGoroutineCount.Set(float64(goroutines))
	if avgGCPauseMs > 0 {
		m.systemGCPauseTime.Observe(avgGCPauseMs)
	}
}

// Package-level helpers operating on the global manager.

// RecordHTTPRequest records an HTTP request on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordError records an error response on the global manager.
func RecordError(endpoint, method, errorType, severity string) {
	globalManager.RecordError(endpoint, method, errorType, severity)
}

// RecordResourceRead counts a served collection on the global manager.
func RecordResourceRead(resource string) { globalManager.RecordResourceRead(resource) }

// RecordPayloadEchoed counts an echoed write on the global manager.
func RecordPayloadEchoed(resource string) { globalManager.RecordPayloadEchoed(resource) }

// RecordMalformedPayload counts a rejected write on the global manager.
func RecordMalformedPayload(resource string) { globalManager.RecordMalformedPayload(resource) }

// UpdateSystem refreshes runtime gauges on the global manager.
func UpdateSystem(allocBytes uint64, goroutines int, avgGCPauseMs float64) {
	globalManager.UpdateSystem(allocBytes, goroutines, avgGCPauseMs)
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
