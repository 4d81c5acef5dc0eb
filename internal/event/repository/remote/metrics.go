package remote

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"events-portal/internal/event/repository"
)

const (
	outcomeSuccess        = "success"
	outcomeStatusError    = "status_error"
	outcomeDecodeError    = "decode_error"
	outcomeTransportError = "transport_error"
)

// Metrics instruments calls to the events API.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "events_upstream_requests_total",
			Help: "Requests sent to the events API, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "events_upstream_request_duration_seconds",
			Help:    "Latency of requests sent to the events API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

// track records one finished call. It is safe on a nil receiver.
func (m *Metrics) track(op string, start time.Time, errp *error) {
	if m == nil {
		return
	}
	var err error
	if errp != nil {
		err = *errp
	}
	m.requests.WithLabelValues(op, outcome(err)).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func outcome(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.As(err, &statusErr):
		return outcomeStatusError
	case errors.Is(err, repository.ErrMalformedBody):
		return outcomeDecodeError
	default:
		return outcomeTransportError
	}
}
