package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

type PrometheusMetrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration prometheus.Histogram
	tradeAmount       prometheus.Histogram
	openAccounts      prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		operationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger operations by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		operationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_operation_duration_milliseconds",
				Help:    "Ledger operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		tradeAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "trade_amount",
				Help:    "Executed trade amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		openAccounts: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "open_accounts_total",
				Help: "Number of accounts currently registered",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordOperation(kind, outcome string) {
	m.operationsTotal.WithLabelValues(kind, outcome).Inc()
}

func (m *PrometheusMetrics) RecordTradeAmount(amount decimal.Decimal) {
	value, _ := amount.Float64()
	m.tradeAmount.Observe(value)
}

func (m *PrometheusMetrics) RecordOperationDuration(durationMs float64) {
	m.operationDuration.Observe(durationMs)
}

func (m *PrometheusMetrics) SetOpenAccounts(count int) {
	m.openAccounts.Set(float64(count))
}
