package metrics

import (
	"math"

	"calc/internal/arith"
	calcerrors "calc/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics represents the calculator's Prometheus collectors
type Metrics struct {
	OperationsTotal *prometheus.CounterVec
	ErrorsTotal     *prometheus.CounterVec
	ResultMagnitude prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{}

	m.OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calc_operations_total",
			Help: "Total number of calculator operations",
		},
		[]string{"operator", "outcome"},
	)

	m.ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calc_errors_total",
			Help: "Total number of failed calculations by error code",
		},
		[]string{"code"},
	)

	m.ResultMagnitude = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "calc_result_magnitude",
			Help:    "Absolute value of successful results",
			Buckets: []float64{arith.MinMagnitude, 0.01, 0.1, 1, 10, 100, arith.MaxMagnitude},
		},
	)

	reg.MustRegister(
		m.OperationsTotal,
		m.ErrorsTotal,
		m.ResultMagnitude,
	)

	return m
}

// Observe records one computation. op is the operator as typed, which may
// be invalid.
func (m *Metrics) Observe(op string, result float64, err error) {
	if err != nil {
		m.OperationsTotal.WithLabelValues(op, OutcomeError).Inc()
		m.ErrorsTotal.WithLabelValues(string(calcerrors.CodeOf(err))).Inc()
		return
	}
	m.OperationsTotal.WithLabelValues(op, OutcomeOK).Inc()
	m.ResultMagnitude.Observe(math.Abs(result))
}
