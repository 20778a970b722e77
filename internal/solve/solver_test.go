package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/stepsolve/internal/logging"
)

// stubSolver claims everything and records that it ran.
type stubSolver struct {
	typ    string
	solved bool
}

func (s *stubSolver) CanSolve(string) bool { return true }
func (s *stubSolver) Type() string         { return s.typ }
func (s *stubSolver) Solve(string) Solution {
	s.solved = true
	return Solution{Result: s.typ, Type: s.typ, Difficulty: DifficultyBasic}
}

func TestRegistry_DefaultDispatch(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		input string
		typ   string
	}{
		{"2 + 2", TypeCalculation},
		{"sqrt(16) + 2^3", TypeCalculation},
		{"2x + 3 = 7", TypeLinearEquation},
		{"x^2 - 5x + 6 = 0", TypeQuadraticEquation},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sol, ok := r.Solve(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.typ, sol.Type)
		})
	}
}

func TestRegistry_NoSolverClaims(t *testing.T) {
	r := NewDefaultRegistry(WithLogger(logging.Nop{}))

	// Two equals signs: the algebraic solver declines, the calculation
	// solver declines anything containing one.
	sol, ok := r.Solve("x = 2 = 3")
	assert.False(t, ok)
	assert.Empty(t, sol.Type)

	solver, ok := r.SolverFor("x = 2 = 3")
	assert.False(t, ok)
	assert.Nil(t, solver)
}

func TestRegistry_RegistrationOrderWins(t *testing.T) {
	first := &stubSolver{typ: "first"}
	second := &stubSolver{typ: "second"}

	r := NewRegistry()
	r.Register(first)
	r.Register(second)

	sol, ok := r.Solve("anything")
	require.True(t, ok)
	assert.Equal(t, "first", sol.Type)
	assert.True(t, first.solved)
	assert.False(t, second.solved)
}

func TestRegistry_SolversReturnsCopy(t *testing.T) {
	r := NewDefaultRegistry()

	solvers := r.Solvers()
	require.Len(t, solvers, 2)
	solvers[0] = nil

	again := r.Solvers()
	assert.NotNil(t, again[0])
}
