package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the relay service
type Metrics struct {
	// Request metrics
	RequestsTotal   prometheus.Counter
	RequestDuration prometheus.Histogram
	RequestErrors   *prometheus.CounterVec

	// Resolver metrics
	ResolverErrors *prometheus.CounterVec

	// Delivery metrics
	DeliveriesTotal   *prometheus.CounterVec
	DeliveryFailures  *prometheus.CounterVec
	DownloadedBytes   prometheus.Counter
	DownloadDuration  prometheus.Histogram

	// Temp file metrics
	TempCleanupFailures prometheus.Counter
}

var (
	// DefaultMetrics is the default metrics instance
	DefaultMetrics *Metrics
	once           sync.Once
)

// GetDefaultMetrics returns the singleton metrics instance
func GetDefaultMetrics() *Metrics {
	once.Do(func() {
		DefaultMetrics = NewMetrics()
	})
	return DefaultMetrics
}

// NewMetrics creates a new Metrics instance with all counters and gauges
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ytdl_relay_requests_total",
			Help: "Total number of relay requests received",
		}),
		RequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ytdl_relay_request_duration_seconds",
			Help:    "Duration of relay requests in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}),
		RequestErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ytdl_relay_request_errors_total",
				Help: "Total number of failed relay requests",
			},
			[]string{"error_type"},
		),
		ResolverErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ytdl_relay_resolver_errors_total",
				Help: "Total number of media resolver errors",
			},
			[]string{"error_type"},
		),
		DeliveriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ytdl_relay_deliveries_total",
				Help: "Total number of successful deliveries by mode",
			},
			[]string{"mode"},
		),
		DeliveryFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ytdl_relay_delivery_failures_total",
				Help: "Total number of failed deliveries by reason",
			},
			[]string{"reason"},
		),
		DownloadedBytes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ytdl_relay_downloaded_bytes_total",
			Help: "Total bytes downloaded during fallback deliveries",
		}),
		DownloadDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ytdl_relay_download_duration_seconds",
			Help:    "Duration of fallback media downloads in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}),
		TempCleanupFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ytdl_relay_temp_cleanup_failures_total",
			Help: "Total number of temp file cleanup failures",
		}),
	}
}

// RecordRequest records a completed relay request
func (m *Metrics) RecordRequest(duration float64) {
	m.RequestsTotal.Inc()
	m.RequestDuration.Observe(duration)
}

// RecordRequestError records a failed relay request with error type
func (m *Metrics) RecordRequestError(errorType string) {
	if errorType == "" {
		errorType = "unknown"
	}
	m.RequestErrors.WithLabelValues(errorType).Inc()
}

// RecordResolverError records a resolver error with error type
func (m *Metrics) RecordResolverError(errorType string) {
	if errorType == "" {
		errorType = "unknown"
	}
	m.ResolverErrors.WithLabelValues(errorType).Inc()
}

// RecordDelivery records a successful delivery by mode
func (m *Metrics) RecordDelivery(mode string) {
	m.DeliveriesTotal.WithLabelValues(mode).Inc()
}

// RecordDeliveryFailure records a failed delivery with reason
func (m *Metrics) RecordDeliveryFailure(reason string) {
	if reason == "" {
		reason = "unknown"
	}
	m.DeliveryFailures.WithLabelValues(reason).Inc()
}

// RecordDownload records a completed fallback download
func (m *Metrics) RecordDownload(bytes int64, duration float64) {
	// Only add positive values to prevent counter from going backwards
	if bytes > 0 {
		m.DownloadedBytes.Add(float64(bytes))
	}
	m.DownloadDuration.Observe(duration)
}

// RecordTempCleanupFailure records a temp file cleanup failure
func (m *Metrics) RecordTempCleanupFailure() {
	m.TempCleanupFailures.Inc()
}
