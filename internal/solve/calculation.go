package solve

import (
	"fmt"
	"strings"

	"github.com/agbru/stepsolve/internal/expr"
	"github.com/agbru/stepsolve/internal/format"
)

// vizSamplePoints is the fixed probe set for visualization eligibility.
// Every probe must evaluate to a finite real value before an expression is
// declared safely plottable; zero is deliberately included so expressions
// like 1/x are disqualified.
var vizSamplePoints = [...]float64{-5, -1, 0, 1, 5}

// Default plotting domain for eligible expressions.
const (
	vizDomainLow  = -10
	vizDomainHigh = 10
)

// CalculationSolver handles non-equation arithmetic and function
// expressions: it evaluates the input and decomposes one level of structure
// into explanatory steps.
type CalculationSolver struct{}

// NewCalculationSolver creates a calculation solver.
func NewCalculationSolver() *CalculationSolver {
	return &CalculationSolver{}
}

// Type returns the stable solver identifier.
func (s *CalculationSolver) Type() string { return TypeCalculation }

// CanSolve claims any input without an equals sign that parses under the
// supported grammar. It never panics and has no side effects.
func (s *CalculationSolver) CanSolve(input string) bool {
	if strings.Contains(input, "=") {
		return false
	}
	_, err := expr.Parse(input)
	return err == nil
}

// Solve builds the step sequence for an arithmetic expression: a parse
// step, an optional one-level decomposition of a complex root node, the
// final evaluation, plus visualization eligibility and difficulty.
// Any internal failure yields a single-step calculation-error Solution.
func (s *CalculationSolver) Solve(input string) (solution Solution) {
	defer func() {
		if r := recover(); r != nil {
			solution = errorSolution(TypeCalculationError, DifficultyBasic,
				"Solve the expression", fmt.Errorf("internal failure: %v", r))
		}
	}()

	tree, err := expr.Parse(input)
	if err != nil {
		return errorSolution(TypeCalculationError, DifficultyBasic, "Parse the expression", err)
	}

	steps := []SolutionStep{{
		Description: "Parse the expression",
		Formula:     expr.Display(tree),
		Explanation: "The input is read into its structural form, honoring operator precedence.",
	}}

	variables := expr.Variables(tree)
	var result string

	if len(variables) == 0 {
		decompSteps, err := decompositionSteps(tree)
		if err != nil {
			return errorSolution(TypeCalculationError, DifficultyBasic, "Evaluate the expression", err)
		}
		steps = append(steps, decompSteps...)

		value, err := expr.Eval(tree, nil)
		if err != nil {
			return errorSolution(TypeCalculationError, DifficultyBasic, "Evaluate the expression", err)
		}
		result = format.Complex(real(value), imag(value))
		steps = append(steps, SolutionStep{
			Description: "Evaluate the expression",
			Formula:     expr.Display(tree) + " = " + result,
			Explanation: "Computing the full expression gives the final value.",
		})
	} else {
		// A free variable means the input defines a function of that
		// variable rather than a single value; the rendered form is the
		// result.
		result = expr.Display(tree)
		steps = append(steps, SolutionStep{
			Description: "Identify the variables",
			Formula:     result,
			Explanation: fmt.Sprintf("The expression contains the variable %s and defines a function rather than a single value.",
				strings.Join(variables, ", ")),
		})
	}

	return Solution{
		Steps:         steps,
		Result:        result,
		Type:          TypeCalculation,
		Difficulty:    classifyExpression(tree),
		Visualization: sampleVisualization(tree, variables),
	}
}

// decompositionSteps produces the shallow one-level decomposition: when the
// root is an operator or function node with at least one operator/function
// child, each immediate child is evaluated independently and the root
// operation is then applied to the computed values. The decomposition is
// deliberately not recursive.
func decompositionSteps(tree expr.Node) ([]SolutionStep, error) {
	children, apply := rootOperation(tree)
	if children == nil {
		return nil, nil
	}
	complexRoot := false
	for _, child := range children {
		if expr.IsOperatorNode(child) {
			complexRoot = true
			break
		}
	}
	if !complexRoot {
		return nil, nil
	}

	values := make([]string, len(children))
	parts := make([]string, len(children))
	for i, child := range children {
		v, err := expr.Eval(child, nil)
		if err != nil {
			return nil, err
		}
		values[i] = format.Complex(real(v), imag(v))
		parts[i] = expr.Display(child) + " = " + values[i]
	}

	total, err := expr.Eval(tree, nil)
	if err != nil {
		return nil, err
	}

	return []SolutionStep{
		{
			Description: "Evaluate the parts",
			Formula:     strings.Join(parts, ", "),
			Explanation: "Each part of the expression is computed separately.",
		},
		{
			Description: "Apply " + apply.label,
			Formula:     apply.render(values) + " = " + format.Complex(real(total), imag(total)),
			Explanation: fmt.Sprintf("The computed values are combined using %s.", apply.label),
		},
	}, nil
}

// rootApply describes how the root operation recombines child values in the
// decomposition step.
type rootApply struct {
	label  string
	render func(values []string) string
}

// rootOperation returns the immediate children of an operator or function
// root along with its recombination description, or nil for leaf roots.
func rootOperation(tree expr.Node) ([]expr.Node, rootApply) {
	switch v := tree.(type) {
	case *expr.Binary:
		op := v.Op
		return []expr.Node{v.Left, v.Right}, rootApply{
			label: op.Name(),
			render: func(values []string) string {
				return values[0] + " " + op.Symbol() + " " + values[1]
			},
		}
	case *expr.Unary:
		op := v.Op
		return []expr.Node{v.Operand}, rootApply{
			label: op.Name(),
			render: func(values []string) string {
				return op.Symbol() + "(" + values[0] + ")"
			},
		}
	case *expr.Call:
		name := v.Name
		return v.Args, rootApply{
			label: "the function " + name,
			render: func(values []string) string {
				return name + "(" + strings.Join(values, ", ") + ")"
			},
		}
	}
	return nil, rootApply{}
}

// sampleVisualization decides plotting eligibility: exactly one free
// variable, and the expression evaluates to a finite real at every probe in
// vizSamplePoints. Any parse, evaluation, or finiteness failure disqualifies.
func sampleVisualization(tree expr.Node, variables []string) *VisualizationData {
	if len(variables) != 1 {
		return nil
	}
	v := variables[0]
	for _, x := range vizSamplePoints {
		if _, err := expr.EvalReal(tree, map[string]float64{v: x}); err != nil {
			return nil
		}
	}
	return &VisualizationData{
		Type:       VisualizationKindFunctionGraph,
		Expression: expr.Display(tree),
		Variable:   v,
		XRange:     [2]float64{vizDomainLow, vizDomainHigh},
	}
}
