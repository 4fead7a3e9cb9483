package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the tempo service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Refresh pipeline metrics
	refreshCycles        prometheus.Counter
	refreshCycleDuration prometheus.Histogram
	refreshInFlight      prometheus.Gauge
	fetchErrors          *prometheus.CounterVec
	snapshotLastUnix     prometheus.Gauge
	snapshotDiscarded    prometheus.Counter

	// Normalization quality metrics
	assignmentsNormalized prometheus.Counter
	fieldsDefaulted       *prometheus.CounterVec
	invertedIntervals     prometheus.Counter

	// Store client metrics
	storeRequests       *prometheus.CounterVec
	storeRequestLatency prometheus.Histogram

	// Fleet scale gauges
	assetCount      prometheus.Gauge
	engineerCount   prometheus.Gauge
	assignmentCount prometheus.Gauge
	auditEntryCount prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
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
		namespace:        "tempo",
		subsystem:        "maintenance",
		histogramBuckets: prometheus.DefBuckets,
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

	m.refreshCycles = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_cycles_total",
		Help:      "Total number of refresh cycles started",
	})

	m.refreshCycleDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_cycle_duration_milliseconds",
		Help:      "Histogram of full fetch-normalize-publish cycle duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.refreshInFlight = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_in_flight",
		Help:      "Number of refresh cycles currently in flight (cycles are not coalesced)",
	})

	m.fetchErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "fetch_errors_total",
			Help:      "Total number of failed store fetches by collection",
		},
		[]string{"collection"},
	)

	m.snapshotLastUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_last_publish_unix",
		Help:      "Unix timestamp of the last snapshot publish",
	})

	m.snapshotDiscarded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_discarded_publishes_total",
		Help:      "Total number of publishes ignored because the snapshot store was closed",
	})

	m.assignmentsNormalized = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "assignments_normalized_total",
		Help:      "Total number of raw assignments normalized into canonical intervals",
	})

	m.fieldsDefaulted = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "fields_defaulted_total",
			Help:      "Total number of assignment fields resolved by a default instead of an explicit value",
		},
		[]string{"field"},
	)

	m.invertedIntervals = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "inverted_intervals_total",
		Help:      "Total number of assignments whose explicit end preceded start (duration floored to zero)",
	})

	m.storeRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "store_requests_total",
			Help:      "Total number of remote store requests by path and outcome",
		},
		[]string{"path", "outcome"},
	)

	m.storeRequestLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_request_latency_milliseconds",
		Help:      "Histogram of remote store request latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.assetCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "asset_count",
		Help:      "Number of assets in the current snapshot",
	})

	m.engineerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "engineer_count",
		Help:      "Number of engineers in the current snapshot",
	})

	m.assignmentCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "assignment_count",
		Help:      "Number of canonical assignments in the current snapshot",
	})

	m.auditEntryCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "audit_entry_count",
		Help:      "Number of audit entries in the current snapshot",
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
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
