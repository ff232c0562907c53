package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the data-access layer. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	QueriesTotal       *prometheus.CounterVec
	QueryLatency       *prometheus.HistogramVec
	RowsWritten        *prometheus.CounterVec
	DuplicatesRejected *prometheus.CounterVec
	AuditFailures      *prometheus.CounterVec
	PacketsTotal       *prometheus.CounterVec
	HTTPLatency        *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		QueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "evc_queries_total",
			Help: "Criteria queries executed, by table",
		}, []string{"table"}),
		QueryLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "evc_query_duration_seconds",
			Help:    "Latency of page plus count query pairs, by table",
			Buckets: prometheus.DefBuckets,
		}, []string{"table"}),
		RowsWritten: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "evc_rows_written_total",
			Help: "Rows affected by writes, by table and operation",
		}, []string{"table", "op"}),
		DuplicatesRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "evc_duplicates_rejected_total",
			Help: "Inserts refused because an identical row was already recorded",
		}, []string{"table"}),
		AuditFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "evc_audit_write_failures_total",
			Help: "History rows that could not be written after a committed mutation",
		}, []string{"table"}),
		PacketsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "evc_registration_packets_total",
			Help: "Registration packet operations, by operation and outcome",
		}, []string{"op", "outcome"}),
		HTTPLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "evc_http_request_duration_seconds",
			Help:    "HTTP request latency, by route pattern and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

func (m *Metrics) ObserveQuery(table string, started time.Time) {
	if m == nil {
		return
	}
	m.QueriesTotal.WithLabelValues(table).Inc()
	m.QueryLatency.WithLabelValues(table).Observe(time.Since(started).Seconds())
}

func (m *Metrics) AddRowsWritten(table, op string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.RowsWritten.WithLabelValues(table, op).Add(float64(n))
}

func (m *Metrics) IncDuplicateRejected(table string) {
	if m == nil {
		return
	}
	m.DuplicatesRejected.WithLabelValues(table).Inc()
}

func (m *Metrics) IncAuditFailure(table string) {
	if m == nil {
		return
	}
	m.AuditFailures.WithLabelValues(table).Inc()
}

func (m *Metrics) IncPacket(op, outcome string) {
	if m == nil {
		return
	}
	m.PacketsTotal.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) ObserveHTTP(route string, status int, started time.Time) {
	if m == nil {
		return
	}
	m.HTTPLatency.WithLabelValues(route, strconv.Itoa(status)).Observe(time.Since(started).Seconds())
}
