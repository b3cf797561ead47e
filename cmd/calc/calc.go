package main

import (
	"calc/internal/arith"
	"calc/internal/metrics"
	"calc/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	engine   = arith.New()
	recorder = metrics.NewMetrics(prometheus.DefaultRegisterer)
)

// invalidOperatorLabel keeps arbitrary user input out of metric labels.
const invalidOperatorLabel = "invalid"

// evaluate applies op and records the outcome.
func evaluate(op arith.Operator, a, b float64) (float64, error) {
	result, err := engine.Apply(op, a, b)
	recorder.Observe(op.String(), result, err)
	if err != nil {
		telemetry.LogDebug("operation rejected", "a", a, "op", op.String(), "b", b, "error", err)
		return 0, err
	}
	telemetry.LogDebug("operation computed", "a", a, "op", op.String(), "b", b, "result", result)
	return result, nil
}

// parseOperator wraps arith.ParseOperator and records rejected input.
func parseOperator(s string) (arith.Operator, error) {
	op, err := arith.ParseOperator(s)
	if err != nil {
		recorder.Observe(invalidOperatorLabel, 0, err)
		return 0, err
	}
	return op, nil
}
