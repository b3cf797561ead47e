package arith

import (
	"math"
	"strconv"
	"strings"

	calcerrors "calc/internal/errors"
)

// Operator is one of the four supported operator characters.
type Operator byte

const (
	Add      Operator = '+'
	Subtract Operator = '-'
	Multiply Operator = '*'
	Divide   Operator = '/'
)

// Operators lists the supported operators in prompt order.
var Operators = []Operator{Add, Subtract, Multiply, Divide}

func (o Operator) String() string {
	return string(o)
}

// Valid reports whether o is one of the supported operators.
func (o Operator) Valid() bool {
	switch o {
	case Add, Subtract, Multiply, Divide:
		return true
	}
	return false
}

// ParseOperator accepts exactly one operator character, ignoring
// surrounding whitespace.
func ParseOperator(s string) (Operator, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) != 1 {
		return 0, calcerrors.NewInvalidOperator(trimmed)
	}
	op := Operator(trimmed[0])
	if !op.Valid() {
		return 0, calcerrors.NewInvalidOperator(trimmed)
	}
	return op, nil
}

// ParseOperand parses a finite decimal number.
func ParseOperand(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, calcerrors.NewInvalidOperand(trimmed)
	}
	return v, nil
}

// FormatNumber renders v with six significant digits, trailing zeros
// dropped, matching a default iostream.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// FormatEquation renders "<a> <op> <b> = <result>".
func FormatEquation(a float64, op Operator, b, result float64) string {
	return FormatNumber(a) + " " + op.String() + " " + FormatNumber(b) + " = " + FormatNumber(result)
}
