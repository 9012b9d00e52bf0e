package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels shared by the fetch and request counters.
const (
	OutcomeOK              = "ok"
	OutcomeStatusError     = "status_error"
	OutcomeTransportError  = "transport_error"
	OutcomeNormalizeFailed = "normalize_failed"
)

// Row result labels.
const (
	RowAccepted      = "accepted"
	RowTooFewColumns = "too_few_columns"
	RowInvalidPrice  = "invalid_price"
)

var (
	// Upstream feed metrics
	UpstreamFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lmp_upstream_fetch_total",
			Help: "Upstream CSV downloads by outcome",
		}, []string{"outcome"})
	UpstreamLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lmp_upstream_fetch_duration_seconds",
			Help:    "Time to download the upstream CSV",
			Buckets: prometheus.DefBuckets,
		})

	// Normalizer metrics
	Rows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lmp_rows_total",
			Help: "CSV data rows seen by the normalizer, by result",
		}, []string{"result"})

	// API metrics
	Requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lmp_requests_total",
			Help: "Real-time LMP requests by outcome",
		}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(
		UpstreamFetches,
		UpstreamLatency,
		Rows,
		Requests,
	)
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
