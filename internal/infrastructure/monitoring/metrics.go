package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the namespace service.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Namespace operation metrics
	OpsTotal   *prometheus.CounterVec
	OpDuration *prometheus.HistogramVec
	BatchUnits *prometheus.CounterVec

	// Namespace state metrics
	Entries prometheus.Gauge
	Bytes   prometheus.Gauge

	Uptime    prometheus.Gauge
	startTime time.Time
}

// New creates the metrics collector. Call it once per process: collectors
// register against the default registry.
func New() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memfsd_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "memfsd_http_request_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		OpsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memfsd_namespace_ops_total",
				Help: "Total namespace operations by tool and status",
			},
			[]string{"op", "status"},
		),
		OpDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "memfsd_namespace_op_duration_seconds",
				Help:    "Namespace operation duration",
				Buckets: []float64{.00001, .0001, .001, .01, .1, 1},
			},
			[]string{"op"},
		),
		BatchUnits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memfsd_batch_units_total",
				Help: "Dispatched batch units by status",
			},
			[]string{"status"},
		),
		Entries: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "memfsd_namespace_entries",
			Help: "Current number of namespace entries",
		}),
		Bytes: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "memfsd_namespace_bytes",
			Help: "Cumulative size of all file content",
		}),
		Uptime: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "memfsd_uptime_seconds",
			Help: "Process uptime",
		}),
	}
}

// RecordOp records one namespace operation. Nil receivers are no-ops so
// the provider can run without a collector in tests.
func (m *Metrics) RecordOp(op, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.OpsTotal.WithLabelValues(op, status).Inc()
	m.OpDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordBatchUnit records one unit of a batch request.
func (m *Metrics) RecordBatchUnit(status string) {
	if m == nil {
		return
	}
	m.BatchUnits.WithLabelValues(status).Inc()
}

// SetNamespaceSize updates the entry and byte gauges.
func (m *Metrics) SetNamespaceSize(entries, bytes int) {
	if m == nil {
		return
	}
	m.Entries.Set(float64(entries))
	m.Bytes.Set(float64(bytes))
}

// RecordHTTPRequest records one HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}
