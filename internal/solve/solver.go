package solve

import (
	"github.com/agbru/stepsolve/internal/logging"
)

// Solver is the capability contract every concrete solver implements.
//
// Contract: CanSolve is a pure predicate with no side effects and never
// panics. Solve is total: when CanSolve reported true, Solve must still
// return a well-formed Solution even on internal failure, falling back to
// an error-tagged Solution rather than panicking.
type Solver interface {
	// CanSolve reports whether this solver claims the input.
	CanSolve(input string) bool
	// Solve builds the full step-by-step Solution for the input.
	Solve(input string) Solution
	// Type returns the stable solver identifier.
	Type() string
}

// Registry holds an ordered, append-only list of solvers and dispatches an
// input to the first solver that claims it. Registration order is the only
// priority mechanism; the built-in solvers are mutually exclusive through
// their own CanSolve predicates, but the ordering keeps dispatch
// deterministic should overlapping solvers ever be registered.
//
// A Registry is append-only during setup and read-only during dispatch, so
// concurrent SolverFor/Solve calls after setup are safe without locking.
type Registry struct {
	solvers []Solver
	logger  logging.Logger
}

// RegistryOption configures a Registry during construction.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(logger logging.Logger) RegistryOption {
	return func(r *Registry) { r.logger = logger }
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{logger: logging.Nop{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewDefaultRegistry creates a Registry with the built-in solvers in their
// canonical order: calculation first, algebraic second.
func NewDefaultRegistry(opts ...RegistryOption) *Registry {
	r := NewRegistry(opts...)
	r.Register(NewCalculationSolver())
	r.Register(NewAlgebraicSolver())
	return r
}

// Register appends a solver. Solvers registered earlier win ties when more
// than one claims an input.
func (r *Registry) Register(s Solver) {
	r.solvers = append(r.solvers, s)
}

// Solvers returns a copy of the registered solvers in registration order.
func (r *Registry) Solvers() []Solver {
	out := make([]Solver, len(r.solvers))
	copy(out, r.solvers)
	return out
}

// SolverFor returns the first registered solver whose CanSolve claims the
// input, or false when no solver claims it.
//
// Parameters:
//   - input: The raw problem text.
//
// Returns:
//   - Solver: The claiming solver.
//   - bool: Whether any solver claimed the input.
func (r *Registry) SolverFor(input string) (Solver, bool) {
	for _, s := range r.solvers {
		if s.CanSolve(input) {
			return s, true
		}
	}
	return nil, false
}

// Solve dispatches the input to the first claiming solver and returns its
// Solution.
//
// Parameters:
//   - input: The raw problem text.
//
// Returns:
//   - Solution: The solver's output.
//   - bool: false when no registered solver claimed the input; the returned
//     Solution is then the zero value.
func (r *Registry) Solve(input string) (Solution, bool) {
	solver, ok := r.SolverFor(input)
	if !ok {
		r.logger.Debug("no solver claimed input", logging.String("input", input))
		return Solution{}, false
	}
	r.logger.Debug("dispatching input", logging.String("solver", solver.Type()))
	return solver.Solve(input), true
}
