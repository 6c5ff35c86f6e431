// Package metrics provides Prometheus metrics for the score portal service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus metric the service exports.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Ingestion metrics
	scoresStored    prometheus.Counter
	scoresDiscarded prometheus.Counter

	// Store metrics
	storeQueryDuration *prometheus.HistogramVec
	storeErrors        *prometheus.CounterVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Scoreboard scale
	eventCount prometheus.Gauge
	teamCount  prometheus.Gauge
	frozen     prometheus.Gauge

	// Process health
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global manager on a custom registry so the default Go collectors never
// pollute /healthz output.
var (
	customRegistry = prometheus.NewRegistry()              //nolint:gochecknoglobals // singleton registry
	globalManager  *Manager                                //nolint:gochecknoglobals // singleton manager
)

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers all metrics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "scoreportal",
		subsystem:        "scoreboard",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.scoresStored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scores_stored_total",
		Help:      "Total number of score submissions durably stored",
	})

	m.scoresDiscarded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scores_discarded_total",
		Help:      "Total number of submissions accepted but discarded while frozen",
	})

	m.storeQueryDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_query_duration_milliseconds",
		Help:      "Histogram of event store query latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"query"})

	m.storeErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_errors_total",
		Help:      "Total number of event store failures by query",
	}, []string{"query"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.eventCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "event_count",
		Help:      "Number of score events currently stored",
	})

	m.teamCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "team_count",
		Help:      "Number of distinct teams with at least one stored event",
	})

	m.frozen = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "frozen",
		Help:      "1 while the scoreboard is frozen, 0 otherwise",
	})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current allocated heap memory in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
}

// GetRegistry exposes the custom registry for promhttp.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordScoreStored counts one durably stored submission.
func RecordScoreStored() { globalManager.scoresStored.Inc() }

// RecordScoreDiscarded counts one submission dropped by freeze mode.
func RecordScoreDiscarded() { globalManager.scoresDiscarded.Inc() }

// RecordStoreQueryDuration observes one store query latency in milliseconds.
func RecordStoreQueryDuration(query string, ms float64) {
	globalManager.storeQueryDuration.WithLabelValues(query).Observe(ms)
}

// RecordStoreError counts one failed store query.
func RecordStoreError(query string) {
	globalManager.storeErrors.WithLabelValues(query).Inc()
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request latency in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}

// UpdateEventCount sets the stored event count gauge.
func UpdateEventCount(n int64) { globalManager.eventCount.Set(float64(n)) }

// UpdateTeamCount sets the distinct team count gauge.
func UpdateTeamCount(n int64) { globalManager.teamCount.Set(float64(n)) }

// UpdateFrozen reflects the freeze flag on the gauge.
func UpdateFrozen(frozen bool) {
	if frozen {
		globalManager.frozen.Set(1)
		return
	}
	globalManager.frozen.Set(0)
}

// UpdateSystemMemoryUsage sets the heap allocation gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(n int) {
	globalManager.systemGoroutineCount.Set(float64(n))
}
