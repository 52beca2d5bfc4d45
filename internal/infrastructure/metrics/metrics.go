package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TransactionMetrics covers the ledger, mutation and analytics paths.
type TransactionMetrics struct {
	LedgerRequestsTotal     prometheus.CounterVec
	LedgerTransactionsTotal prometheus.CounterVec
	SourceFailuresTotal     prometheus.CounterVec
	MutationsTotal          prometheus.CounterVec
	AnalyticsDuration       prometheus.HistogramVec
}

func NewTransactionMetrics() *TransactionMetrics {
	return &TransactionMetrics{
		LedgerRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_requests_total",
				Help: "Merged ledger reads by scope (user/platform)",
			},
			[]string{"scope"},
		),

		LedgerTransactionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_total",
				Help: "Normalized transactions served, by source",
			},
			[]string{"source"},
		),

		SourceFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_source_failures_total",
				Help: "Source store reads that degraded to an empty contribution",
			},
			[]string{"source"},
		),

		MutationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_mutations_total",
				Help: "Status updates, hash attachments and deletes, by outcome",
			},
			[]string{"source", "action", "outcome"},
		),

		AnalyticsDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_compute_duration_seconds",
				Help:    "Time to recompute period stats",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"scope"},
		),
	}
}

func (m *TransactionMetrics) RecordLedgerRequest(scope string) {
	m.LedgerRequestsTotal.WithLabelValues(scope).Inc()
}

func (m *TransactionMetrics) RecordLedgerTransactions(source string, count int) {
	m.LedgerTransactionsTotal.WithLabelValues(source).Add(float64(count))
}

func (m *TransactionMetrics) RecordSourceFailure(source string) {
	m.SourceFailuresTotal.WithLabelValues(source).Inc()
}

func (m *TransactionMetrics) RecordMutation(source, action, outcome string) {
	m.MutationsTotal.WithLabelValues(source, action, outcome).Inc()
}

func (m *TransactionMetrics) RecordAnalyticsDuration(scope string, durationSeconds float64) {
	m.AnalyticsDuration.WithLabelValues(scope).Observe(durationSeconds)
}

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

func RecordHTTPRequest(method, path, status string, durationSeconds float64) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}
