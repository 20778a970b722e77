package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/stepsolve/internal/errors"
)

func TestParseStructure(t *testing.T) {
	t.Parallel()

	t.Run("precedence of multiplication over addition", func(t *testing.T) {
		t.Parallel()
		node, err := Parse("2+2*3")
		require.NoError(t, err)

		root, ok := node.(*Binary)
		require.True(t, ok, "root should be a binary node")
		assert.Equal(t, OpAdd, root.Op)

		right, ok := root.Right.(*Binary)
		require.True(t, ok, "right child should be the product")
		assert.Equal(t, OpMul, right.Op)
	})

	t.Run("power is right-associative", func(t *testing.T) {
		t.Parallel()
		node, err := Parse("2^3^2")
		require.NoError(t, err)

		root := node.(*Binary)
		assert.Equal(t, OpPow, root.Op)
		_, leftIsNumber := root.Left.(*Number)
		assert.True(t, leftIsNumber, "left of the outer power should be the literal 2")
		inner, ok := root.Right.(*Binary)
		require.True(t, ok)
		assert.Equal(t, OpPow, inner.Op)
	})

	t.Run("implicit multiplication number times variable", func(t *testing.T) {
		t.Parallel()
		node, err := Parse("2x")
		require.NoError(t, err)

		root, ok := node.(*Binary)
		require.True(t, ok)
		assert.Equal(t, OpMul, root.Op)
		assert.Equal(t, &Number{Value: 2}, root.Left)
		assert.Equal(t, &Variable{Name: "x"}, root.Right)
	})

	t.Run("implicit multiplication number times group", func(t *testing.T) {
		t.Parallel()
		node, err := Parse("5(x+1)")
		require.NoError(t, err)

		root, ok := node.(*Binary)
		require.True(t, ok)
		assert.Equal(t, OpMul, root.Op)
	})

	t.Run("unary minus binds below power", func(t *testing.T) {
		t.Parallel()
		node, err := Parse("-x^2")
		require.NoError(t, err)

		root, ok := node.(*Unary)
		require.True(t, ok, "-x^2 should parse as -(x^2)")
		assert.Equal(t, OpNeg, root.Op)
		inner, ok := root.Operand.(*Binary)
		require.True(t, ok)
		assert.Equal(t, OpPow, inner.Op)
	})

	t.Run("function call", func(t *testing.T) {
		t.Parallel()
		node, err := Parse("sin(x)")
		require.NoError(t, err)

		call, ok := node.(*Call)
		require.True(t, ok)
		assert.Equal(t, "sin", call.Name)
		require.Len(t, call.Args, 1)
	})

	t.Run("unknown name before parenthesis is multiplication", func(t *testing.T) {
		t.Parallel()
		node, err := Parse("x(x+1)")
		require.NoError(t, err)

		root, ok := node.(*Binary)
		require.True(t, ok)
		assert.Equal(t, OpMul, root.Op)
		assert.Equal(t, &Variable{Name: "x"}, root.Left)
	})

	t.Run("unicode operators accepted", func(t *testing.T) {
		t.Parallel()
		node, err := Parse("6 ÷ 2 × 3")
		require.NoError(t, err)
		v, err := EvalReal(node, nil)
		require.NoError(t, err)
		assert.InDelta(t, 9.0, v, 1e-12)
	})
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"whitespace only", "   "},
		{"unbalanced open parenthesis", "2+(3"},
		{"unbalanced close parenthesis", "2+3)"},
		{"dangling operator", "2+"},
		{"leading operator", "*3"},
		{"double decimal point", "1.2.3"},
		{"lone decimal point", "."},
		{"unexpected character", "2 $ 3"},
		{"empty call", "sin()"},
		{"missing call parenthesis", "sin(x"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.input)
			require.Error(t, err, "input %q should not parse", tt.input)
			assert.True(t, apperrors.IsParseError(err), "error should be a ParseError, got %v", err)
		})
	}
}

func TestDisplay(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected string
	}{
		{"2+2*3", "2 + 2 × 3"},
		{"(2+3)*4", "(2 + 3) × 4"},
		{"2x + 3", "2 × x + 3"},
		{"x^2 - 5x + 6", "x^2 − 5 × x + 6"},
		{"-x^2", "−x^2"},
		{"10/(2+3)", "10 ÷ (2 + 3)"},
		{"1 - (2 - 3)", "1 − (2 − 3)"},
		{"2^(3^2)", "2^3^2"},
		{"(2^3)^2", "(2^3)^2"},
		{"sin(x) + 1", "sin(x) + 1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			node, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, Display(node))
		})
	}
}

func TestDisplayRoundTrip(t *testing.T) {
	t.Parallel()
	// Displayed output must re-parse to an equally-valued tree.
	inputs := []string{"2+2*3", "(2+3)*4", "1-(2-3)", "2^(3^2)", "(2^3)^2", "10/(2+3)", "-4*2"}
	for _, input := range inputs {
		node, err := Parse(input)
		require.NoError(t, err)
		want, err := EvalReal(node, nil)
		require.NoError(t, err)

		reparsed, err := Parse(Display(node))
		require.NoError(t, err, "display of %q should re-parse", input)
		got, err := EvalReal(reparsed, nil)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9, "round trip changed the value of %q", input)
	}
}
