package batch

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/najia/pkg/domain"
)

// Outcome labels of najia_compile_total.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeTimeout = "timeout"
	OutcomeError   = "error"
)

// Metrics holds the batch collectors.
type Metrics struct {
	compiles  *prometheus.CounterVec
	duration  prometheus.Histogram
	batchSize prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// It panics if they are already registered there.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		compiles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "najia_compile_total",
				Help: "Hexagram compilations by outcome.",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "najia_compile_duration_seconds",
				Help:    "Duration of single hexagram compilations.",
				Buckets: prometheus.ExponentialBuckets(0.00005, 4, 10),
			},
		),
		batchSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "najia_batch_size",
				Help:    "Number of requests per batch.",
				Buckets: []float64{1, 5, 10, 50, 100, 500, 1000},
			},
		),
	}
	reg.MustRegister(m.compiles, m.duration, m.batchSize)
	return m
}

// Observe records one compilation. A nil receiver is a no-op.
func (m *Metrics) Observe(err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.compiles.WithLabelValues(outcome(err)).Inc()
	m.duration.Observe(elapsed.Seconds())
}

func (m *Metrics) observeBatch(n int) {
	if m == nil {
		return
	}
	m.batchSize.Observe(float64(n))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrInvalidLines):
		return OutcomeInvalid
	case errors.Is(err, context.DeadlineExceeded):
		return OutcomeTimeout
	default:
		return OutcomeError
	}
}
