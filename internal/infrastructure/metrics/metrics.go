package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Account metrics
	AccountsRegistered prometheus.Counter
	RegistrationErrors *prometheus.CounterVec

	// Session metrics
	ActiveSessions prometheus.Gauge
	AuthAttempts   *prometheus.CounterVec

	// Transaction metrics
	Transactions      *prometheus.CounterVec
	TransactionAmount *prometheus.HistogramVec
	TransactionErrors *prometheus.CounterVec

	// Certificate metrics
	CertificatesIssued prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Account metrics
		AccountsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caribank_accounts_registered_total",
			Help: "Total number of accounts registered",
		}),
		RegistrationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "caribank_registration_errors_total",
				Help: "Total registration failures by reason",
			},
			[]string{"reason"},
		),

		// Session metrics
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "caribank_active_sessions",
			Help: "Current number of open sessions",
		}),
		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "caribank_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),

		// Transaction metrics
		Transactions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "caribank_transactions_total",
				Help: "Total transactions by kind",
			},
			[]string{"kind"},
		),
		TransactionAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "caribank_transaction_amount",
				Help:    "Transaction amounts by kind",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
			},
			[]string{"kind"},
		),
		TransactionErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "caribank_transaction_errors_total",
				Help: "Total transaction failures by kind and reason",
			},
			[]string{"kind", "reason"},
		),

		// Certificate metrics
		CertificatesIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caribank_certificates_issued_total",
			Help: "Total number of balance certificates issued",
		}),
	}
}
