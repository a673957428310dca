package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RecordsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "animal_registry_records_created_total",
			Help: "Records appended to a collection, labeled by storage key",
		},
		[]string{"collection"},
	)

	PersistFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "animal_registry_persist_failures_total",
			Help: "Failed writes of a collection to the backing store",
		},
		[]string{"collection"},
	)

	ClassificationOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "animal_registry_classifications_total",
			Help: "Breed classifications run, by outcome (match or fallback)",
		},
		[]string{"outcome"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "animal_registry_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route pattern and status code",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	AlertSweeps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "animal_registry_alert_sweeps_total",
			Help: "Herd alert sweeps run, by result (ok or error)",
		},
		[]string{"result"},
	)

	SweepAlerts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "animal_registry_sweep_alerts",
			Help: "Alerts produced by the last herd sweep",
		},
	)

	ClassificationConfidence = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "animal_registry_classification_confidence",
			Help:    "Confidence percentage of the returned breed",
			Buckets: []float64{30, 50, 60, 70, 75, 80, 85, 90, 100},
		},
	)
)

func init() {
	prometheus.MustRegister(
		RecordsCreated,
		PersistFailures,
		ClassificationOutcomes,
		ClassificationConfidence,
		AlertSweeps,
		SweepAlerts,
		HTTPRequestDuration,
	)
}

// Handler expone el registry por defecto en formato Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}
