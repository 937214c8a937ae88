package metrics

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ReasonTimeout  = "timeout"
	ReasonCanceled = "canceled"
	ReasonStorage  = "storage"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	aggregationDuration *prometheus.HistogramVec
	aggregationErrors   *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
	workerMessages      *prometheus.CounterVec
}

// New builds the collectors and registers them with registerer. A nil
// registerer means the process-wide default.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		aggregationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "usage_aggregation_duration_seconds",
			Help:    "Latency of usage aggregations across the ledger and the event store.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
		aggregationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "usage_aggregation_errors_total",
			Help: "Failed usage aggregations by operation and reason.",
		}, []string{"operation", "reason"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		workerMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_messages_total",
			Help: "Queue messages handled by workers by outcome.",
		}, []string{"worker", "outcome"}),
	}

	registerer.MustRegister(
		m.aggregationDuration,
		m.aggregationErrors,
		m.httpRequests,
		m.httpDuration,
		m.workerMessages,
	)
	return m
}

func (m *Metrics) ObserveAggregation(operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.aggregationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
	if err != nil {
		m.aggregationErrors.WithLabelValues(operation, ClassifyError(err)).Inc()
	}
}

func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) CountMessage(worker, outcome string) {
	if m == nil {
		return
	}
	m.workerMessages.WithLabelValues(worker, outcome).Inc()
}

// ClassifyError maps an error to a low-cardinality reason label.
func ClassifyError(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, context.Canceled):
		return ReasonCanceled
	default:
		return ReasonStorage
	}
}
