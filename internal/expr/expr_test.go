package expr_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotdrill/internal/expr"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"2*3", 6},
		{".1", 0.1},
		{"1.5", 1.5},
		{"-2", -2},
		{"+2", 2},
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"10/4", 2.5},
		{"2**3", 8},
		{"2**3**2", 512}, // right associative
		{"-2**2", -4},    // power binds tighter than unary minus
		{"2**-1", 0.5},
		{"1 - 2 - 3", -4},
		{"((2))", 2},
		{"25.4*2", 50.8},
		{"", 0},
		{"   ", 0},
		{"\t", 0},
	}
	for _, c := range cases {
		got, err := expr.Evaluate(c.input)
		require.NoError(t, err, "input %q", c.input)
		assert.InDelta(t, c.want, got, 1e-12, "input %q", c.input)
	}
}

func TestEvaluate_Errors(t *testing.T) {
	cases := []struct {
		input string
		kind  expr.Kind
	}{
		{"1/0", expr.DivideByZero},
		{"1/(2-2)", expr.DivideByZero},
		{"2*", expr.Malformed},
		{"(1+2", expr.Malformed},
		{"1+2)", expr.Malformed},
		{"1..2", expr.Malformed},
		{"1 2", expr.Malformed},
		{"#5", expr.Malformed},
		{"abc", expr.InvalidOperand},
		{"2+x", expr.InvalidOperand},
		{"(-1)**0.5", expr.InvalidOperand},
		{"1e999999", expr.Malformed}, // no exponent syntax
		{strings.Repeat("9", 400), expr.Overflow},
		{"1" + strings.Repeat("0", 200) + "*1" + strings.Repeat("0", 200), expr.Overflow},
	}
	for _, c := range cases {
		_, err := expr.Evaluate(c.input)
		require.Error(t, err, "input %q", c.input)
		assert.Equal(t, c.kind, expr.KindOf(err), "input %q: %v", c.input, err)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	a, err := expr.Evaluate("1.5*25.4 + (3 - .25)")
	require.NoError(t, err)
	b, err := expr.Evaluate("1.5*25.4 + (3 - .25)")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestIsBlank(t *testing.T) {
	assert.True(t, expr.IsBlank(""))
	assert.True(t, expr.IsBlank("  \t "))
	assert.False(t, expr.IsBlank("0"))
}
