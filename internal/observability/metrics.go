package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce        sync.Once
	requestsTotal       *prometheus.CounterVec
	latencySeconds      *prometheus.HistogramVec
	errorsTotal         *prometheus.CounterVec
	droppedRecordsTotal prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used for analytics observability.
func RegisterMetrics() {
	registerOnce.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "analytics_requests_total",
			Help: "Total number of analytics API requests served.",
		}, []string{"method", "route", "status"})

		latencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "analytics_latency_seconds",
			Help:    "Latency distribution for analytics API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		errorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "analytics_errors_total",
			Help: "Total number of error responses returned by analytics endpoints.",
		}, []string{"method", "route", "status"})

		droppedRecordsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "analytics_dropped_records_total",
			Help: "Records that missed every bucket in the reporting schema.",
		})

		prometheus.MustRegister(requestsTotal, latencySeconds, errorsTotal, droppedRecordsTotal)
	})
}

// Requests exposes the counter for analytics requests.
func Requests() *prometheus.CounterVec {
	RegisterMetrics()
	return requestsTotal
}

// Latency exposes the latency histogram for analytics requests.
func Latency() *prometheus.HistogramVec {
	RegisterMetrics()
	return latencySeconds
}

// Errors exposes the counter for analytics error responses.
func Errors() *prometheus.CounterVec {
	RegisterMetrics()
	return errorsTotal
}

// DroppedRecords exposes the counter for records dropped during bucketing.
func DroppedRecords() prometheus.Counter {
	RegisterMetrics()
	return droppedRecordsTotal
}
