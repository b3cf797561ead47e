package arith

import (
	"sync"
	"testing"

	calcerrors "calc/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineOperations(t *testing.T) {
	e := New()

	tests := []struct {
		name    string
		fn      func(a, b float64) (float64, error)
		a, b    float64
		want    float64
		wantErr error
	}{
		{name: "add", fn: e.Add, a: 10, b: 5, want: 15},
		{name: "add negatives", fn: e.Add, a: -3, b: -7, want: -10},
		{name: "add zeros", fn: e.Add, a: 0, b: 0, want: 0},
		{name: "add upper bound inclusive", fn: e.Add, a: 500, b: 500, want: 1000},
		{name: "add over bound", fn: e.Add, a: 500, b: 501, wantErr: calcerrors.ErrResultTooLarge},
		{name: "add 501+501", fn: e.Add, a: 501, b: 501, wantErr: calcerrors.ErrResultTooLarge},
		{name: "subtract", fn: e.Subtract, a: 10, b: 3, want: 7},
		{name: "subtract negative result", fn: e.Subtract, a: 3, b: 10, want: -7},
		{name: "subtract below negative bound", fn: e.Subtract, a: -600, b: 401, wantErr: calcerrors.ErrResultTooLarge},
		{name: "multiply", fn: e.Multiply, a: 4, b: 5, want: 20},
		{name: "multiply by zero", fn: e.Multiply, a: 100, b: 0, want: 0},
		{name: "multiply too large", fn: e.Multiply, a: 100, b: 20, wantErr: calcerrors.ErrResultTooLarge},
		{name: "multiply too small", fn: e.Multiply, a: 0.01, b: 0.01, wantErr: calcerrors.ErrResultTooSmall},
		{name: "divide", fn: e.Divide, a: 10, b: 2, want: 5},
		{name: "divide by zero", fn: e.Divide, a: 10, b: 0, wantErr: calcerrors.ErrDivisionByZero},
		{name: "divide zero by zero", fn: e.Divide, a: 0, b: 0, wantErr: calcerrors.ErrDivisionByZero},
		{name: "divide too small", fn: e.Divide, a: 1, b: 5000, wantErr: calcerrors.ErrResultTooSmall},
		{name: "divide lower bound inclusive", fn: e.Divide, a: 1, b: 1000, want: 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.a, tt.b)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateResult(t *testing.T) {
	tests := []struct {
		name    string
		in      float64
		wantErr error
	}{
		{name: "zero exempt", in: 0},
		{name: "upper bound", in: 1000},
		{name: "negative upper bound", in: -1000},
		{name: "lower bound", in: 0.001},
		{name: "negative lower bound", in: -0.001},
		{name: "just over", in: 1000.0001, wantErr: calcerrors.ErrResultTooLarge},
		{name: "negative just over", in: -1000.0001, wantErr: calcerrors.ErrResultTooLarge},
		{name: "tiny", in: 0.0002, wantErr: calcerrors.ErrResultTooSmall},
		{name: "negative tiny", in: -0.0002, wantErr: calcerrors.ErrResultTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateResult(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestAddIsExactWithinBounds(t *testing.T) {
	e := New()
	for a := -500.0; a <= 500; a += 37.25 {
		for b := -500.0; b <= 500; b += 41.5 {
			sum := a + b
			if sum != 0 && (sum > -MinMagnitude && sum < MinMagnitude) {
				continue
			}
			got, err := e.Add(a, b)
			require.NoError(t, err, "a=%v b=%v", a, b)
			assert.Equal(t, sum, got)
		}
	}
}

func TestApply(t *testing.T) {
	e := New()

	got, err := e.Apply(Subtract, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, -7.0, got)

	_, err = e.Apply(Divide, 10, 0)
	assert.ErrorIs(t, err, calcerrors.ErrDivisionByZero)

	_, err = e.Apply(Operator('%'), 1, 2)
	assert.ErrorIs(t, err, calcerrors.ErrInvalidOperator)
}

func TestEngineConcurrentUse(t *testing.T) {
	e := New()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n float64) {
			defer wg.Done()
			got, err := e.Multiply(n, 2)
			assert.NoError(t, err)
			assert.Equal(t, n*2, got)
		}(float64(i + 1))
	}
	wg.Wait()
}
