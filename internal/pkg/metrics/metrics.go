package metrics

import (
	"errors"

	"eventlineup/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the application collectors.
type Metrics struct {
	// method, path, status_code
	HTTPRequestsTotal *prometheus.CounterVec

	// method, path
	HTTPRequestDuration *prometheus.HistogramVec

	// kind: invalid_range, out_of_event_bounds, overlap_conflict, children_out_of_bounds, not_found
	ValidationRejectionsTotal *prometheus.CounterVec

	// status: queued, dropped, succeeded, failed
	ExportJobsTotal *prometheus.CounterVec

	ExportQueueDepth prometheus.Gauge
}

// New registers the collectors on the default registerer.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the collectors on reg.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		ValidationRejectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lineup_validation_rejections_total",
				Help: "Writes rejected by time window validation",
			},
			[]string{"kind"},
		),
		ExportJobsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lineup_export_jobs_total",
				Help: "Export jobs by outcome",
			},
			[]string{"status"},
		),
		ExportQueueDepth: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "lineup_export_queue_depth",
				Help: "Export jobs waiting for the worker",
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ValidationRejectionsTotal,
		m.ExportJobsTotal,
		m.ExportQueueDepth,
	)

	return m
}

// RejectionKind returns the label used for err, or "" when err is not a validation rejection.
func RejectionKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, domain.ErrOutOfEventBounds):
		return "out_of_event_bounds"
	case errors.Is(err, domain.ErrOverlapConflict):
		return "overlap_conflict"
	case errors.Is(err, domain.ErrChildrenOutOfBounds):
		return "children_out_of_bounds"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	}
	return ""
}

// ObserveRejection counts err when it is a validation rejection. Safe on a nil receiver.
func (m *Metrics) ObserveRejection(err error) {
	if m == nil || err == nil {
		return
	}
	if _, ok := domain.AsValidationError(err); !ok {
		return
	}
	if kind := RejectionKind(err); kind != "" {
		m.ValidationRejectionsTotal.WithLabelValues(kind).Inc()
	}
}

// ExportJob counts one export outcome. Safe on a nil receiver.
func (m *Metrics) ExportJob(status string) {
	if m == nil {
		return
	}
	m.ExportJobsTotal.WithLabelValues(status).Inc()
}

// SetQueueDepth records the number of pending export jobs. Safe on a nil receiver.
func (m *Metrics) SetQueueDepth(n int) {
	if m == nil {
		return
	}
	m.ExportQueueDepth.Set(float64(n))
}
