package solve

// Difficulty is the heuristic complexity tag of a Solution, derived
// deterministically from the parsed expression tree.
type Difficulty string

// Difficulty levels, ordered from easiest to hardest.
const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Solution type tags. Error tags carry the "-error" suffix so downstream
// renderers can detect failure results without inspecting steps.
const (
	TypeCalculation      = "calculation"
	TypeCalculationError = "calculation-error"

	TypeLinearEquation           = "linear-equation"
	TypeLinearEquationDegenerate = "linear-equation-degenerate"
	TypeLinearEquationError      = "linear-equation-error"

	TypeQuadraticEquation        = "quadratic-equation"
	TypeQuadraticEquationComplex = "quadratic-equation-complex"
	TypeQuadraticEquationError   = "quadratic-equation-error"

	TypeUnknownEquation = "unknown-equation"
	TypeAlgebraicError  = "algebraic-error"
)

// VisualizationKindFunctionGraph is the only visualization type the solvers
// currently produce.
const VisualizationKindFunctionGraph = "function-graph"

// SolutionStep is one explanation unit of a Solution. Steps are immutable
// once created and their order is pedagogically meaningful: consumers must
// render them in sequence and never reorder.
type SolutionStep struct {
	// Description is a short label for the step ("Parse the expression").
	Description string `json:"description"`
	// Formula is the math-notation payload of the step.
	Formula string `json:"formula"`
	// Explanation is prose shown alongside the formula.
	Explanation string `json:"explanation"`
	// DetailedExplanation is optional expandable prose for curious learners.
	DetailedExplanation string `json:"detailedExplanation,omitempty"`
}

// VisualizationData is an optional plotting hint attached to a Solution.
// It is produced only after the owning solver has verified the expression
// is safely sample-able, or when real roots exist.
type VisualizationData struct {
	// Type identifies the visualization kind (function-graph).
	Type string `json:"type"`
	// Expression is the plottable expression in display notation.
	Expression string `json:"expression"`
	// Variable is the sampling variable.
	Variable string `json:"variable"`
	// XRange is the [low, high] plotting domain.
	XRange [2]float64 `json:"xRange"`
	// SolutionPoints are x values to highlight (real roots). Absent for
	// complex-root solutions.
	SolutionPoints []float64 `json:"solutionPoints,omitempty"`
}

// Solution is the complete output of one Solve call: an ordered step
// sequence plus the final result. It is created once per call and never
// mutated after return.
type Solution struct {
	// Steps is the append-only, final pedagogical sequence.
	Steps []SolutionStep `json:"steps"`
	// Result is always renderable: a formula or an explicit error marker.
	Result string `json:"result"`
	// Type is the solver-specific tag; error types end in "-error".
	Type string `json:"type"`
	// Difficulty is the deterministic complexity classification.
	Difficulty Difficulty `json:"difficulty"`
	// Visualization is present only when plotting is safe or roots exist.
	Visualization *VisualizationData `json:"visualization,omitempty"`
}

// IsError reports whether the Solution carries an error tag.
func (s Solution) IsError() bool {
	const suffix = "-error"
	return len(s.Type) >= len(suffix) && s.Type[len(s.Type)-len(suffix):] == suffix
}

// errorSolution builds the single-step failure Solution the capability
// contract requires: steps accumulated before the failure are replaced
// wholesale, never appended to.
func errorSolution(typ string, difficulty Difficulty, description string, err error) Solution {
	return Solution{
		Steps: []SolutionStep{{
			Description: description,
			Formula:     "Error",
			Explanation: err.Error(),
		}},
		Result:     "Error",
		Type:       typ,
		Difficulty: difficulty,
	}
}
