package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine-level Prometheus metrics. HTTP metrics are
// recorded by the middleware layer.
type Metrics struct {
	AccountsCreated   prometheus.Counter
	OperationsApplied *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	OperationErrors   *prometheus.CounterVec
	OperationAmount   prometheus.Histogram
	IdempotentReplays *prometheus.CounterVec
	DBConnections     prometheus.Gauge
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "walletd_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		OperationsApplied: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletd_operations_applied_total",
				Help: "Total operations applied to the log by kind",
			},
			[]string{"kind"},
		),
		OperationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "walletd_operation_duration_seconds",
				Help:    "Duration of wallet operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		OperationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletd_operation_errors_total",
				Help: "Total wallet operation errors by type",
			},
			[]string{"error_type"},
		),
		OperationAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "walletd_operation_amount",
			Help:    "Operation amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		IdempotentReplays: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletd_idempotent_replays_total",
				Help: "Total requests answered from previously recorded operations",
			},
			[]string{"source"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "walletd_db_connections",
			Help: "Current number of database connections",
		}),
	}
}
