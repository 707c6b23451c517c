package evaluator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotforge/numexpr/internal/functions"
	"github.com/plotforge/numexpr/internal/parser"
)

func eval(t *testing.T, ctx *Context, input string) float64 {
	t.Helper()
	tree, err := parser.ParseExpression(input)
	require.NoError(t, err)
	result, err := New(ctx).Evaluate(tree)
	require.NoError(t, err)
	return result
}

func evalErr(t *testing.T, ctx *Context, input string) error {
	t.Helper()
	tree, err := parser.ParseExpression(input)
	require.NoError(t, err)
	_, err = New(ctx).Evaluate(tree)
	require.Error(t, err)
	return err
}

func TestEvaluateArithmetic(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1 + 2", 3},
		{"10 - 4", 6},
		{"6 * 7", 42},
		{"7 / 2", 3.5},
		{"7 % 3", 1},
		{"-7 % 3", -1},
		{"2 ** 10", 1024},
		{"2 ** 3 ** 2", 512},
		{"2 ** -1", 0.5},
		{"-2 ** 2", 4}, // unary minus binds tighter than **
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"0.1 + 0.2", 0.30000000000000004},
	}

	ctx := NewContext()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, eval(t, ctx, tt.input))
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	ctx := NewContext()

	err := evalErr(t, ctx, "1 / 0")
	assert.ErrorIs(t, err, ErrDivisionByZero)

	err = evalErr(t, ctx, "1 % 0")
	assert.ErrorIs(t, err, ErrModuloByZero)

	// Only an exactly-zero divisor is rejected.
	assert.Equal(t, 2.0, eval(t, ctx, "1 / 0.5"))
}

func TestEvaluateComparisons(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1 < 2", 1},
		{"2 < 1", 0},
		{"2 <= 2", 1},
		{"3 > 2", 1},
		{"2 >= 3", 0},
		{"2 == 2", 1},
		{"2 != 2", 0},
		{"1 < 2 == 3 > 2", 1},
	}

	ctx := NewContext()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, eval(t, ctx, tt.input))
		})
	}
}

func TestEvaluateLogicAndBitwise(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1 && 1", 1},
		{"1 && 0", 0},
		{"0 || 0", 0},
		{"0 || 5", 1},
		{"-3 && 0.5", 1}, // any non-zero operand is true
		{"!0", 1},
		{"!42", 0},
		{"6 & 3", 2},
		{"6 | 3", 7},
		{"6 ^ 3", 5},
		{"~0", -1},
		{"6.9 & 3.9", 2}, // operands truncate toward zero
	}

	ctx := NewContext()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, eval(t, ctx, tt.input))
		})
	}
}

func TestEvaluateTernary(t *testing.T) {
	ctx := NewContext()

	assert.Equal(t, 10.0, eval(t, ctx, "1 ? 10 : 20"))
	assert.Equal(t, 20.0, eval(t, ctx, "0 ? 10 : 20"))
	assert.Equal(t, 10.0, eval(t, ctx, "-0.5 ? 10 : 20"))

	// NaN is non-zero and therefore truthy.
	assert.Equal(t, 10.0, eval(t, ctx, "sqrt(-1) ? 10 : 20"))
}

func TestEvaluateTernaryShortCircuit(t *testing.T) {
	ctx := NewContext()

	// The untaken branch is never evaluated, so its assignment must not run.
	assert.Equal(t, 1.0, eval(t, ctx, "1 ? (taken = 1) : (skipped = 1)"))
	assert.True(t, ctx.HasVariable("taken"))
	assert.False(t, ctx.HasVariable("skipped"))

	// Errors in the untaken branch are invisible too.
	assert.Equal(t, 7.0, eval(t, ctx, "1 ? 7 : 1/0"))
}

func TestEvaluateAssignmentAndComma(t *testing.T) {
	ctx := NewContext()

	assert.Equal(t, 5.0, eval(t, ctx, "x = 5"))
	v, ok := ctx.GetVariable("x")
	require.True(t, ok)
	assert.Equal(t, 5.0, v)

	// Chained assignment binds right to left.
	assert.Equal(t, 2.0, eval(t, ctx, "a = b = 2"))
	a, _ := ctx.GetVariable("a")
	b, _ := ctx.GetVariable("b")
	assert.Equal(t, 2.0, a)
	assert.Equal(t, 2.0, b)

	// Comma evaluates left to right and yields the right value.
	assert.Equal(t, 30.0, eval(t, ctx, "p = 10, q = 20, p + q"))
	assert.True(t, ctx.HasVariable("p"))
	assert.True(t, ctx.HasVariable("q"))
}

func TestEvaluateVariables(t *testing.T) {
	ctx := NewContext()
	ctx.SetVariable("x", 3)

	assert.Equal(t, 9.0, eval(t, ctx, "x * x"))

	err := evalErr(t, ctx, "x + nope")
	assert.ErrorIs(t, err, ErrUndefinedVariable)
	assert.Contains(t, err.Error(), "nope")
}

func TestEvaluateConstants(t *testing.T) {
	ctx := NewContext()

	assert.Equal(t, math.Pi, eval(t, ctx, "pi"))
	assert.Equal(t, math.E, eval(t, ctx, "e"))
	assert.InDelta(t, 0.0, eval(t, ctx, "sin(pi)"), 1e-15)

	// Constants are plain bindings: overwritable, and restored by a clear.
	ctx.SetVariable("pi", 3)
	assert.Equal(t, 3.0, eval(t, ctx, "pi"))
	ctx.ClearVariables()
	assert.Equal(t, math.Pi, eval(t, ctx, "pi"))
}

func TestEvaluateBuiltinCalls(t *testing.T) {
	ctx := NewContext()

	assert.InDelta(t, 1.0, eval(t, ctx, "sin(pi/2)"), 1e-15)
	assert.Equal(t, 3.0, eval(t, ctx, "sqrt(9)"))
	assert.Equal(t, 5.0, eval(t, ctx, "min(7, 5, 9)"))

	err := evalErr(t, ctx, "nosuchfn(1)")
	assert.ErrorIs(t, err, ErrUndefinedFunction)

	err = evalErr(t, ctx, "sqrt(1, 2)")
	assert.Contains(t, err.Error(), "sqrt")
}

func TestEvaluateCustomBuiltin(t *testing.T) {
	ctx := NewContext()
	ctx.RegisterFunction("double", functions.Exactly(1), func(args []float64) (float64, error) {
		return args[0] * 2, nil
	})

	assert.Equal(t, 8.0, eval(t, ctx, "double(4)"))

	ctx.RemoveFunction("double")
	err := evalErr(t, ctx, "double(4)")
	assert.ErrorIs(t, err, ErrUndefinedFunction)
}

func TestEvaluateNilNode(t *testing.T) {
	_, err := New(NewContext()).Evaluate(nil)
	require.Error(t, err)
}

func TestEvalErrorPosition(t *testing.T) {
	ctx := NewContext()
	err := evalErr(t, ctx, "1 +\n  missing")

	var evalError *EvalError
	require.ErrorAs(t, err, &evalError)
	assert.Equal(t, 2, evalError.Position.Line)
	assert.Equal(t, 3, evalError.Position.Column)
}
