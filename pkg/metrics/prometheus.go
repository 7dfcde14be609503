// Package metrics provides Prometheus metrics for the gunghap matching service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the matching service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Matching metrics
	recommendRequests prometheus.Counter
	recommendLatency  prometheus.Histogram
	candidatesScored  prometheus.Counter
	candidatesSkipped prometheus.Counter
	sajuFallbacks     prometheus.Counter

	// Geocode pipeline metrics
	geocodeJobsEnqueued  prometheus.Counter
	geocodeJobsResolved  prometheus.Counter
	geocodeJobsFailed    prometheus.Counter
	geocodeJobsDuplicate prometheus.Counter
	queueSize            prometheus.Gauge
	queueCapacity        prometheus.Gauge
	queueUtilization     prometheus.Gauge
	workerCount          prometheus.Gauge
	workerLatency        prometheus.Histogram

	// Store metrics
	profilesStored prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gunghap",
		subsystem:        "matching",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.recommendRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommend_requests_total",
		Help:      "Total number of recommendation requests",
	})

	m.recommendLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommend_latency_milliseconds",
		Help:      "Histogram of full recommendation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.candidatesScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_scored_total",
		Help:      "Total number of candidates successfully scored",
	})

	m.candidatesSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_skipped_total",
		Help:      "Total number of candidates dropped after a scoring failure",
	})

	m.sajuFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "saju_default_scores_total",
		Help:      "Total number of pairs scored with the insufficient-data default",
	})

	m.geocodeJobsEnqueued = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "geocode_jobs_enqueued_total",
		Help:      "Total number of geocode jobs enqueued",
	})

	m.geocodeJobsResolved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "geocode_jobs_resolved_total",
		Help:      "Total number of geocode jobs resolved into coordinates",
	})

	m.geocodeJobsFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "geocode_jobs_failed_total",
		Help:      "Total number of geocode jobs that could not be resolved",
	})

	m.geocodeJobsDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "geocode_jobs_duplicate_total",
		Help:      "Total number of geocode jobs dropped as already in flight",
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "geocode_queue_size",
		Help:      "Current size of the geocode job queue",
	})

	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "geocode_queue_capacity",
		Help:      "Configured capacity of the geocode job queue",
	})

	m.queueUtilization = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "geocode_queue_utilization_ratio",
		Help:      "Geocode queue utilization (size / capacity)",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "geocode_worker_count",
		Help:      "Current number of geocode workers",
	})

	m.workerLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "geocode_worker_latency_milliseconds",
		Help:      "Geocode job processing latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.profilesStored = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "profiles_stored",
		Help:      "Total number of profiles held by the store",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current allocated memory in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
}

// GetRegistry returns the custom registry serving /healthz scrapes.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers delegating to the global manager.

func RecordRecommendRequest() { globalManager.recommendRequests.Inc() }

func RecordRecommendLatency(ms float64) { globalManager.recommendLatency.Observe(ms) }

func RecordCandidateScored() { globalManager.candidatesScored.Inc() }

func RecordCandidateSkipped() { globalManager.candidatesSkipped.Inc() }

func RecordSajuFallback() { globalManager.sajuFallbacks.Inc() }

func RecordGeocodeEnqueued() { globalManager.geocodeJobsEnqueued.Inc() }

func RecordGeocodeResolved() { globalManager.geocodeJobsResolved.Inc() }

func RecordGeocodeFailed() { globalManager.geocodeJobsFailed.Inc() }

func RecordGeocodeDuplicate() { globalManager.geocodeJobsDuplicate.Inc() }

func UpdateQueueSize(size int) { globalManager.queueSize.Set(float64(size)) }

func UpdateQueueCapacity(capacity int) { globalManager.queueCapacity.Set(float64(capacity)) }

func UpdateQueueUtilization(ratio float64) { globalManager.queueUtilization.Set(ratio) }

func UpdateWorkerCount(count int) { globalManager.workerCount.Set(float64(count)) }

func RecordWorkerLatency(ms float64) { globalManager.workerLatency.Observe(ms) }

func UpdateProfilesStored(count int) { globalManager.profilesStored.Set(float64(count)) }

func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}

func UpdateSystemMemoryUsage(bytes uint64) { globalManager.systemMemoryUsage.Set(float64(bytes)) }

func UpdateSystemGoroutineCount(count int) { globalManager.systemGoroutineCount.Set(float64(count)) }
