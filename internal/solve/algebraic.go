package solve

import (
	"fmt"
	"math"
	"strings"

	apperrors "github.com/agbru/stepsolve/internal/errors"
	"github.com/agbru/stepsolve/internal/expr"
	"github.com/agbru/stepsolve/internal/format"
)

// coefficientTolerance decides when a derived coefficient or discriminant
// counts as zero; coefficients travel through float arithmetic, so exact
// comparisons would misclassify.
const coefficientTolerance = 1e-9

// vizRootMargin is the half-width of the plotting domain around a single
// root; vizRootPadding extends the domain beyond the outermost of two roots.
const (
	vizRootMargin  = 5
	vizRootPadding = 3
)

// AlgebraicSolver handles single-variable equations: it detects the degree
// of the standard form and solves linear and quadratic equations, deriving
// real or complex roots.
type AlgebraicSolver struct{}

// NewAlgebraicSolver creates an algebraic solver.
func NewAlgebraicSolver() *AlgebraicSolver {
	return &AlgebraicSolver{}
}

// Type returns the stable solver identifier.
func (s *AlgebraicSolver) Type() string { return "algebraic" }

// CanSolve claims inputs containing exactly one equals sign whose sides
// both parse. It never panics and has no side effects.
func (s *AlgebraicSolver) CanSolve(input string) bool {
	lhs, rhs, ok := splitEquation(input)
	if !ok {
		return false
	}
	if _, err := expr.Parse(lhs); err != nil {
		return false
	}
	_, err := expr.Parse(rhs)
	return err == nil
}

// splitEquation splits input on its single equals sign into trimmed,
// non-empty sides.
func splitEquation(input string) (lhs, rhs string, ok bool) {
	if strings.Count(input, "=") != 1 {
		return "", "", false
	}
	idx := strings.Index(input, "=")
	lhs = strings.TrimSpace(input[:idx])
	rhs = strings.TrimSpace(input[idx+1:])
	return lhs, rhs, lhs != "" && rhs != ""
}

// Solve builds the step sequence for an equation: the original equation,
// its standard form, classification by degree, and the branch-specific
// derivation. Every failure path terminates in a branch-tagged error
// Solution; no failure escapes the call.
func (s *AlgebraicSolver) Solve(input string) (solution Solution) {
	defer func() {
		if r := recover(); r != nil {
			solution = errorSolution(TypeAlgebraicError, DifficultyAdvanced,
				"Solve the equation", fmt.Errorf("internal failure: %v", r))
		}
	}()

	lhsText, rhsText, ok := splitEquation(input)
	if !ok {
		return errorSolution(TypeAlgebraicError, DifficultyAdvanced, "Read the equation",
			apperrors.NewParseError(input, 0, "an equation requires exactly one %q with terms on both sides", "="))
	}
	lhs, err := expr.Parse(lhsText)
	if err != nil {
		return errorSolution(TypeAlgebraicError, DifficultyAdvanced, "Read the equation", err)
	}
	rhs, err := expr.Parse(rhsText)
	if err != nil {
		return errorSolution(TypeAlgebraicError, DifficultyAdvanced, "Read the equation", err)
	}

	steps := []SolutionStep{{
		Description: "Read the equation",
		Formula:     expr.Display(lhs) + " = " + expr.Display(rhs),
		Explanation: "The original equation as given.",
	}}

	// Standard form: everything moved to the left side.
	diff := &expr.Binary{Op: expr.OpSub, Left: lhs, Right: rhs}
	steps = append(steps, SolutionStep{
		Description: "Rewrite in standard form",
		Formula:     expr.Display(diff) + " = 0",
		Explanation: "Subtracting the right side moves every term to the left; solutions are where this expression equals zero.",
	})

	variables := expr.Variables(diff)
	switch {
	case len(variables) == 0:
		return unknownSolution(steps, "The equation contains no variable to solve for.")
	case len(variables) > 1:
		// Multivariate input is explicitly unsupported rather than solved
		// for an arbitrary variable.
		return unknownSolution(steps, fmt.Sprintf(
			"The equation contains several variables (%s); only single-variable equations are supported.",
			strings.Join(variables, ", ")))
	}
	v := variables[0]

	degree, err := expr.DegreeIn(diff, v)
	if err != nil {
		return unknownSolution(steps, fmt.Sprintf("The degree of %s could not be determined: %v.", v, err))
	}

	switch degree {
	case 1:
		return s.solveLinear(steps, diff, v)
	case 2:
		return s.solveQuadratic(steps, diff, v)
	}
	return unknownSolution(steps, fmt.Sprintf(
		"Equations of degree %d in %s have no supported solving method.", degree, v))
}

// unknownSolution terminates classification with the unknown-equation tag.
// This is a normal outcome, not an error: it tells the caller no automatic
// method applies.
func unknownSolution(steps []SolutionStep, reason string) Solution {
	steps = append(steps, SolutionStep{
		Description: "Classify the equation",
		Formula:     "method undetermined",
		Explanation: reason,
	})
	return Solution{
		Steps:      steps,
		Result:     "method undetermined",
		Type:       TypeUnknownEquation,
		Difficulty: DifficultyAdvanced,
	}
}

// solveLinear derives the coefficients of a·x + b = 0 by structural
// binding: with f the standard form, b = f(0) and a = f(1) − f(0).
func (s *AlgebraicSolver) solveLinear(steps []SolutionStep, diff expr.Node, v string) Solution {
	f0, err := expr.EvalReal(diff, map[string]float64{v: 0})
	if err != nil {
		return errorSolution(TypeLinearEquationError, DifficultyBasic, "Extract the coefficients", err)
	}
	f1, err := expr.EvalReal(diff, map[string]float64{v: 1})
	if err != nil {
		return errorSolution(TypeLinearEquationError, DifficultyBasic, "Extract the coefficients", err)
	}
	a := f1 - f0
	b := f0
	return s.finishLinear(steps, diff, v, a, b)
}

// finishLinear completes the linear branch from known coefficients. The
// quadratic branch reuses it when the leading coefficient vanishes.
func (s *AlgebraicSolver) finishLinear(steps []SolutionStep, diff expr.Node, v string, a, b float64) Solution {
	if math.Abs(a) < coefficientTolerance {
		return degenerateLinear(steps, v, b)
	}

	steps = append(steps, SolutionStep{
		Description: "Group the terms",
		Formula:     linearForm(a, b, v) + " = 0",
		Explanation: fmt.Sprintf("Collecting the terms gives a linear equation with coefficient %s and constant %s.",
			format.Number(a), format.Number(b)),
	})
	steps = append(steps, SolutionStep{
		Description: "Isolate the variable term",
		Formula:     coefficientTerm(a, v) + " = " + format.Number(-b),
		Explanation: "Moving the constant to the right side leaves only the variable term.",
	})

	root := -b / a
	steps = append(steps, SolutionStep{
		Description: "Solve for " + v,
		Formula:     fmt.Sprintf("%s = %s ÷ %s = %s", v, format.Number(-b), format.Number(a), format.Number(root)),
		Explanation: "Dividing both sides by the coefficient gives the solution.",
	})

	residual, err := expr.EvalReal(diff, map[string]float64{v: root})
	if err != nil {
		return errorSolution(TypeLinearEquationError, DifficultyBasic, "Verify the solution", err)
	}
	steps = append(steps, verificationStep(diff, v, map[float64]float64{root: residual}))

	return Solution{
		Steps:      steps,
		Result:     fmt.Sprintf("%s = %s", v, format.Number(root)),
		Type:       TypeLinearEquation,
		Difficulty: DifficultyBasic,
		Visualization: &VisualizationData{
			Type:           VisualizationKindFunctionGraph,
			Expression:     expr.Display(diff),
			Variable:       v,
			XRange:         [2]float64{root - vizRootMargin, root + vizRootMargin},
			SolutionPoints: []float64{root},
		},
	}
}

// degenerateLinear handles a vanishing leading coefficient: the equation is
// either an identity (infinitely many solutions) or a contradiction (none).
// Producing an explicit terminal here keeps NaN and Infinity out of results.
func degenerateLinear(steps []SolutionStep, v string, b float64) Solution {
	var step SolutionStep
	var result string
	if math.Abs(b) < coefficientTolerance {
		result = "infinite solutions"
		step = SolutionStep{
			Description: "Recognize an identity",
			Formula:     "0 = 0",
			Explanation: fmt.Sprintf("The variable cancels and both sides are equal; every value of %s is a solution.", v),
		}
	} else {
		result = "no solution"
		step = SolutionStep{
			Description: "Recognize a contradiction",
			Formula:     format.Number(b) + " = 0",
			Explanation: fmt.Sprintf("The variable cancels leaving a false statement; no value of %s satisfies the equation.", v),
		}
	}
	return Solution{
		Steps:      append(steps, step),
		Result:     result,
		Type:       TypeLinearEquationDegenerate,
		Difficulty: DifficultyBasic,
	}
}

// solveQuadratic derives the coefficients of a·x² + b·x + c = 0 by
// structural binding: with f the standard form, c = f(0),
// a = (f(1) + f(−1))/2 − c, and b = (f(1) − f(−1))/2.
func (s *AlgebraicSolver) solveQuadratic(steps []SolutionStep, diff expr.Node, v string) Solution {
	f0, err := expr.EvalReal(diff, map[string]float64{v: 0})
	if err != nil {
		return errorSolution(TypeQuadraticEquationError, DifficultyIntermediate, "Extract the coefficients", err)
	}
	f1, err := expr.EvalReal(diff, map[string]float64{v: 1})
	if err != nil {
		return errorSolution(TypeQuadraticEquationError, DifficultyIntermediate, "Extract the coefficients", err)
	}
	fm1, err := expr.EvalReal(diff, map[string]float64{v: -1})
	if err != nil {
		return errorSolution(TypeQuadraticEquationError, DifficultyIntermediate, "Extract the coefficients", err)
	}

	c := f0
	a := (f1+fm1)/2 - c
	b := (f1 - fm1) / 2

	if math.Abs(a) < coefficientTolerance {
		// The x² terms cancel; the equation is linear after simplification.
		return s.finishLinear(steps, diff, v, b, c)
	}

	steps = append(steps, SolutionStep{
		Description: "Identify the quadratic form",
		Formula:     quadraticForm(a, b, c, v) + " = 0",
		Explanation: fmt.Sprintf("The equation is quadratic with a = %s, b = %s, c = %s.",
			format.Number(a), format.Number(b), format.Number(c)),
	})

	discriminant := b*b - 4*a*c
	steps = append(steps, SolutionStep{
		Description: "Compute the discriminant",
		Formula: fmt.Sprintf("D = (%s)^2 − 4 × %s × %s = %s",
			format.Number(b), format.Number(a), format.Number(c), format.Number(discriminant)),
		Explanation:         "The discriminant D = b^2 − 4ac determines how many real roots exist.",
		DetailedExplanation: "A positive discriminant gives two distinct real roots, zero gives one repeated real root, and a negative discriminant gives a pair of complex conjugate roots.",
	})

	switch {
	case discriminant > coefficientTolerance:
		return s.quadraticTwoRoots(steps, diff, v, a, b, discriminant)
	case discriminant < -coefficientTolerance:
		return s.quadraticComplexRoots(steps, diff, v, a, b, discriminant)
	}
	return s.quadraticRepeatedRoot(steps, diff, v, a, b)
}

// quadraticTwoRoots finishes the positive-discriminant branch.
func (s *AlgebraicSolver) quadraticTwoRoots(steps []SolutionStep, diff expr.Node, v string, a, b, discriminant float64) Solution {
	sq := math.Sqrt(discriminant)
	x1 := (-b + sq) / (2 * a)
	x2 := (-b - sq) / (2 * a)

	steps = append(steps, SolutionStep{
		Description: "Apply the quadratic formula",
		Formula: fmt.Sprintf("%s = (%s ± √%s) ÷ %s ⇒ %s1 = %s, %s2 = %s",
			v, format.Number(-b), format.Number(discriminant), format.Number(2*a),
			v, format.Number(x1), v, format.Number(x2)),
		Explanation:         "A positive discriminant yields two distinct real roots.",
		DetailedExplanation: "The quadratic formula x = (−b ± √D) / (2a) evaluates once with + and once with −.",
	})

	r1, err := expr.EvalReal(diff, map[string]float64{v: x1})
	if err != nil {
		return errorSolution(TypeQuadraticEquationError, DifficultyIntermediate, "Verify the solutions", err)
	}
	r2, err := expr.EvalReal(diff, map[string]float64{v: x2})
	if err != nil {
		return errorSolution(TypeQuadraticEquationError, DifficultyIntermediate, "Verify the solutions", err)
	}
	steps = append(steps, verificationStep(diff, v, map[float64]float64{x1: r1, x2: r2}))

	low := math.Min(x1, x2) - vizRootPadding
	high := math.Max(x1, x2) + vizRootPadding
	return Solution{
		Steps:      steps,
		Result:     fmt.Sprintf("%s1 = %s, %s2 = %s", v, format.Number(x1), v, format.Number(x2)),
		Type:       TypeQuadraticEquation,
		Difficulty: DifficultyIntermediate,
		Visualization: &VisualizationData{
			Type:           VisualizationKindFunctionGraph,
			Expression:     expr.Display(diff),
			Variable:       v,
			XRange:         [2]float64{low, high},
			SolutionPoints: []float64{x1, x2},
		},
	}
}

// quadraticRepeatedRoot finishes the zero-discriminant branch.
func (s *AlgebraicSolver) quadraticRepeatedRoot(steps []SolutionStep, diff expr.Node, v string, a, b float64) Solution {
	root := -b / (2 * a)
	steps = append(steps, SolutionStep{
		Description: "Apply the quadratic formula",
		Formula: fmt.Sprintf("%s = %s ÷ %s = %s",
			v, format.Number(-b), format.Number(2*a), format.Number(root)),
		Explanation: "A zero discriminant yields one repeated real root.",
	})

	residual, err := expr.EvalReal(diff, map[string]float64{v: root})
	if err != nil {
		return errorSolution(TypeQuadraticEquationError, DifficultyIntermediate, "Verify the solution", err)
	}
	steps = append(steps, verificationStep(diff, v, map[float64]float64{root: residual}))

	return Solution{
		Steps:      steps,
		Result:     fmt.Sprintf("%s = %s", v, format.Number(root)),
		Type:       TypeQuadraticEquation,
		Difficulty: DifficultyIntermediate,
		Visualization: &VisualizationData{
			Type:           VisualizationKindFunctionGraph,
			Expression:     expr.Display(diff),
			Variable:       v,
			XRange:         [2]float64{root - vizRootMargin, root + vizRootMargin},
			SolutionPoints: []float64{root},
		},
	}
}

// quadraticComplexRoots finishes the negative-discriminant branch with a
// complex conjugate pair. The visualization keeps a domain centered on the
// vertex but omits solution points: there is nothing real to highlight.
func (s *AlgebraicSolver) quadraticComplexRoots(steps []SolutionStep, diff expr.Node, v string, a, b, discriminant float64) Solution {
	steps = append(steps, SolutionStep{
		Description: "Recognize complex roots",
		Formula:     fmt.Sprintf("D = %s < 0", format.Number(discriminant)),
		Explanation: "A negative discriminant means the parabola never crosses the axis; there are no real roots.",
	})

	realPart := -b / (2 * a)
	imagPart := math.Sqrt(-discriminant) / (2 * math.Abs(a))
	result := fmt.Sprintf("%s = %s ± %si", v, format.Number(realPart), format.Number(imagPart))

	steps = append(steps, SolutionStep{
		Description: "Derive the complex pair",
		Formula:     result,
		Explanation: "The two roots form a complex conjugate pair.",
		DetailedExplanation: fmt.Sprintf(
			"With D < 0 the quadratic formula splits into a real part −b/(2a) = %s and an imaginary part √(−D)/(2a) = %s.",
			format.Number(realPart), format.Number(imagPart)),
	})

	return Solution{
		Steps:      steps,
		Result:     result,
		Type:       TypeQuadraticEquationComplex,
		Difficulty: DifficultyAdvanced,
		Visualization: &VisualizationData{
			Type:       VisualizationKindFunctionGraph,
			Expression: expr.Display(diff),
			Variable:   v,
			XRange:     [2]float64{realPart - vizRootMargin, realPart + vizRootMargin},
		},
	}
}

// verificationStep renders the substitution of each root back into the
// standard form together with its near-zero residual. Roots are rendered in
// ascending order so the step text is deterministic.
func verificationStep(diff expr.Node, v string, residuals map[float64]float64) SolutionStep {
	roots := make([]float64, 0, len(residuals))
	for root := range residuals {
		roots = append(roots, root)
	}
	sortFloats(roots)

	parts := make([]string, len(roots))
	for i, root := range roots {
		parts[i] = fmt.Sprintf("%s = %s ⇒ %s = %s",
			v, format.Number(root), expr.Display(diff), format.Number(residuals[root]))
	}
	return SolutionStep{
		Description: "Verify the solution",
		Formula:     strings.Join(parts, "; "),
		Explanation: "Substituting back into the standard form yields approximately zero.",
	}
}

// sortFloats sorts in place, ascending.
func sortFloats(values []float64) {
	for i := 1; i < len(values); i++ {
		for j := i; j > 0 && values[j] < values[j-1]; j-- {
			values[j], values[j-1] = values[j-1], values[j]
		}
	}
}

// coefficientTerm renders a coefficient applied to a symbol: 1 and −1
// collapse onto the symbol.
func coefficientTerm(coefficient float64, symbol string) string {
	switch format.Number(coefficient) {
	case "1":
		return symbol
	case "-1":
		return "-" + symbol
	}
	return format.Number(coefficient) + symbol
}

// linearForm renders "a·x + b" with zero constant suppressed.
func linearForm(a, b float64, v string) string {
	out := coefficientTerm(a, v)
	if format.Number(b) != "0" {
		out += format.SignedNumber(b)
	}
	return out
}

// quadraticForm renders "a·x^2 + b·x + c" with zero terms suppressed.
func quadraticForm(a, b, c float64, v string) string {
	out := coefficientTerm(a, v+"^2")
	if format.Number(b) != "0" {
		if b < 0 {
			out += " - " + coefficientTerm(-b, v)
		} else {
			out += " + " + coefficientTerm(b, v)
		}
	}
	if format.Number(c) != "0" {
		out += format.SignedNumber(c)
	}
	return out
}
