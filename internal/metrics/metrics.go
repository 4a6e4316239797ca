package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the inventory service
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Import Metrics
	ImportCommitsTotal   prometheus.CounterVec
	ImportRecordsTotal   prometheus.Counter
	ImportInvalidRows    prometheus.Counter
	ImportCommitDuration prometheus.Histogram

	// Integrity Metrics
	IntegrityIssuesTotal  prometheus.CounterVec
	IntegrityFixesTotal   prometheus.Counter
	IntegritySweepSeconds prometheus.Histogram
	OrphansDeletedTotal   prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventario_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "inventario_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "inventario_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		ImportCommitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventario_import_commits_total",
				Help: "Import commit attempts by terminal state",
			},
			[]string{"result"},
		),
		ImportRecordsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "inventario_import_records_total",
				Help: "Asset records committed through the import pipeline",
			},
		),
		ImportInvalidRows: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "inventario_import_invalid_rows_total",
				Help: "Rows rejected during preview for missing type or location",
			},
		),
		ImportCommitDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "inventario_import_commit_duration_seconds",
				Help:    "Time spent committing an import session",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
		),

		IntegrityIssuesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventario_integrity_issues_total",
				Help: "Integrity issues detected by kind",
			},
			[]string{"kind"},
		),
		IntegrityFixesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "inventario_integrity_fixes_total",
				Help: "Integrity violations auto-fixed",
			},
		),
		IntegritySweepSeconds: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "inventario_integrity_sweep_duration_seconds",
				Help:    "Duration of full-table integrity sweeps",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
			},
		),
		OrphansDeletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventario_orphans_deleted_total",
				Help: "Orphaned rows removed by cleanup, by table",
			},
			[]string{"table"},
		),
	}
}
