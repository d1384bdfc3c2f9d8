package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_submissions_total",
			Help: "Número total de depósitos y retiros enviados",
		},
		[]string{"kind", "state"},
	)

	SubmissionAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wallet_submission_amounts",
			Help:    "Distribución de montos enviados",
			Buckets: prometheus.LinearBuckets(0, 500, 20),
		},
		[]string{"kind"},
	)

	ValidationRejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_validation_rejections_total",
			Help: "Solicitudes rechazadas antes de llamar al servicio remoto",
		},
		[]string{"code"},
	)

	RefreshesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_refreshes_total",
			Help: "Número total de recargas de la vista del wallet",
		},
		[]string{"reason", "outcome"},
	)

	StaleRefreshesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wallet_stale_refreshes_discarded_total",
			Help: "Respuestas descartadas por pertenecer a una recarga anterior",
		},
	)

	RemoteFetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wallet_remote_fetch_seconds",
			Help:    "Duración de las lecturas al servicio de wallet",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)

	RevenueExportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revenue_exports_total",
			Help: "Número total de exportaciones de ingresos",
		},
		[]string{"format"},
	)
)

var registerOnce sync.Once

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			SubmissionsTotal,
			SubmissionAmounts,
			ValidationRejectionsTotal,
			RefreshesTotal,
			StaleRefreshesTotal,
			RemoteFetchDuration,
			RevenueExportsTotal,
		)
	})
}
