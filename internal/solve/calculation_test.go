package solve

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculationSolver_CanSolve(t *testing.T) {
	s := NewCalculationSolver()

	tests := []struct {
		input string
		want  bool
	}{
		{"2 + 2", true},
		{"sqrt(16) + 2^3", true},
		{"1/x", true},
		{"x = 2", false},
		{"2 +", false},
		{"", false},
		{"((", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, s.CanSolve(tt.input))
		})
	}
}

func TestCalculationSolver_SimpleArithmetic(t *testing.T) {
	sol := NewCalculationSolver().Solve("2 + 2")

	assert.Equal(t, TypeCalculation, sol.Type)
	assert.Equal(t, "4", sol.Result)
	assert.Equal(t, DifficultyBasic, sol.Difficulty)
	assert.False(t, sol.IsError())
	assert.Nil(t, sol.Visualization)

	// Parse step plus evaluation step; nothing to decompose in a flat sum.
	require.Len(t, sol.Steps, 2)
	assert.Equal(t, "Parse the expression", sol.Steps[0].Description)
	assert.Equal(t, "2 + 2 = 4", sol.Steps[1].Formula)
}

func TestCalculationSolver_OperatorPrecedence(t *testing.T) {
	sol := NewCalculationSolver().Solve("2+2*3")

	assert.Equal(t, "8", sol.Result)
	assert.False(t, sol.IsError())

	// Multiplication binds tighter, so the right child is decomposed first.
	require.Len(t, sol.Steps, 4)
	assert.Equal(t, "Parse the expression", sol.Steps[0].Description)
	assert.Equal(t, "2 = 2, 2 × 3 = 6", sol.Steps[1].Formula)
	assert.Equal(t, "Apply addition", sol.Steps[2].Description)
	assert.Equal(t, "2 + 6 = 8", sol.Steps[2].Formula)
	assert.Equal(t, "2 + 2 × 3 = 8", sol.Steps[3].Formula)
}

func TestCalculationSolver_Decomposition(t *testing.T) {
	sol := NewCalculationSolver().Solve("(2 + 3) * 4")

	assert.Equal(t, "20", sol.Result)
	assert.Equal(t, DifficultyIntermediate, sol.Difficulty)

	// Parse, evaluate-the-parts, apply, final evaluation.
	require.Len(t, sol.Steps, 4)
	assert.Equal(t, "Evaluate the parts", sol.Steps[1].Description)
	assert.Equal(t, "2 + 3 = 5, 4 = 4", sol.Steps[1].Formula)
	assert.Equal(t, "Apply multiplication", sol.Steps[2].Description)
	assert.Equal(t, "5 × 4 = 20", sol.Steps[2].Formula)
	assert.Equal(t, "(2 + 3) × 4 = 20", sol.Steps[3].Formula)
}

func TestCalculationSolver_ComplexResult(t *testing.T) {
	sol := NewCalculationSolver().Solve("sqrt(-4)")

	assert.Equal(t, TypeCalculation, sol.Type)
	assert.Equal(t, "2i", sol.Result)
	assert.False(t, sol.IsError())
}

func TestCalculationSolver_FreeVariable(t *testing.T) {
	sol := NewCalculationSolver().Solve("2x + 1")

	assert.Equal(t, TypeCalculation, sol.Type)
	assert.Equal(t, "2 × x + 1", sol.Result)
	assert.False(t, sol.IsError())

	require.NotNil(t, sol.Visualization)
	assert.Equal(t, VisualizationKindFunctionGraph, sol.Visualization.Type)
	assert.Equal(t, "x", sol.Visualization.Variable)
	assert.Equal(t, [2]float64{-10, 10}, sol.Visualization.XRange)
	assert.Empty(t, sol.Visualization.SolutionPoints)
}

func TestCalculationSolver_VisualizationEligibility(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		eligible bool
	}{
		{"polynomial", "x^2 - 1", true},
		{"sine", "sin(x)", true},
		{"reciprocal undefined at zero", "1/x", false},
		{"log undefined at nonpositive probes", "log(x)", false},
		{"square root complex at negative probes", "sqrt(x)", false},
		{"no variable", "2 + 2", false},
		{"two variables", "x + y", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol := NewCalculationSolver().Solve(tt.input)
			require.False(t, sol.IsError())
			if tt.eligible {
				assert.NotNil(t, sol.Visualization)
			} else {
				assert.Nil(t, sol.Visualization)
			}
		})
	}
}

func TestCalculationSolver_Difficulty(t *testing.T) {
	tests := []struct {
		input string
		want  Difficulty
	}{
		{"2 + 2", DifficultyBasic},
		{"1/x", DifficultyBasic},
		{"2 + 3 * 4", DifficultyIntermediate},
		{"sqrt(16)", DifficultyIntermediate},
		{"sin(x)", DifficultyAdvanced},
		{"1 + 2 + 3 + 4 + 5", DifficultyAdvanced},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sol := NewCalculationSolver().Solve(tt.input)
			assert.Equal(t, tt.want, sol.Difficulty)
		})
	}
}

func TestCalculationSolver_ErrorSolutions(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"division by zero", "1/0"},
		{"log of zero", "log(0)"},
		{"parse failure", "2 + * 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol := NewCalculationSolver().Solve(tt.input)

			assert.Equal(t, TypeCalculationError, sol.Type)
			assert.True(t, sol.IsError())
			assert.Equal(t, "Error", sol.Result)
			assert.Nil(t, sol.Visualization)

			// Failure replaces accumulated steps with a single error step.
			require.Len(t, sol.Steps, 1)
			assert.Equal(t, "Error", sol.Steps[0].Formula)
			assert.True(t, strings.TrimSpace(sol.Steps[0].Explanation) != "")
		})
	}
}
