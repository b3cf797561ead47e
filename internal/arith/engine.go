// Package arith implements the four calculator operations and the result
// magnitude policy shared by all of them.
package arith

import (
	"math"

	calcerrors "calc/internal/errors"
)

const (
	// MaxMagnitude is the largest accepted |result|, inclusive.
	MaxMagnitude = 1000.0
	// MinMagnitude is the smallest accepted non-zero |result|, inclusive.
	MinMagnitude = 0.001
)

// Engine performs validated arithmetic. The zero value is ready to use and
// holds no state, so one Engine may be shared across goroutines.
type Engine struct{}

// New returns an Engine.
func New() *Engine {
	return &Engine{}
}

// Add returns a+b.
func (e *Engine) Add(a, b float64) (float64, error) {
	return ValidateResult(a + b)
}

// Subtract returns a-b.
func (e *Engine) Subtract(a, b float64) (float64, error) {
	return ValidateResult(a - b)
}

// Multiply returns a*b.
func (e *Engine) Multiply(a, b float64) (float64, error) {
	return ValidateResult(a * b)
}

// Divide returns a/b, failing on an exactly zero divisor.
func (e *Engine) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, calcerrors.New(calcerrors.CodeDivisionByZero, "division by zero")
	}
	return ValidateResult(a / b)
}

// Apply dispatches to the operation named by op.
func (e *Engine) Apply(op Operator, a, b float64) (float64, error) {
	switch op {
	case Add:
		return e.Add(a, b)
	case Subtract:
		return e.Subtract(a, b)
	case Multiply:
		return e.Multiply(a, b)
	case Divide:
		return e.Divide(a, b)
	default:
		return 0, calcerrors.NewInvalidOperator(string(op))
	}
}

// ValidateResult enforces the magnitude policy. Zero is always accepted.
func ValidateResult(r float64) (float64, error) {
	m := math.Abs(r)
	if m > MaxMagnitude {
		return 0, calcerrors.New(calcerrors.CodeResultTooLarge, "result is greater than 1000")
	}
	if m < MinMagnitude && r != 0 {
		return 0, calcerrors.New(calcerrors.CodeResultTooSmall, "result is smaller than 0.001")
	}
	return r, nil
}
