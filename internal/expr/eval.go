package expr

import (
	"math"
	"math/cmplx"

	apperrors "github.com/agbru/stepsolve/internal/errors"
)

// realTolerance is the imaginary magnitude below which a complex evaluation
// result is considered real.
const realTolerance = 1e-9

// constants are the named constants of the grammar. They are never free
// variables: classification and visualization exclude them.
var constants = map[string]complex128{
	"e":  complex(math.E, 0),
	"pi": complex(math.Pi, 0),
	"i":  complex(0, 1),
}

// IsConstant reports whether name is one of the named constants.
func IsConstant(name string) bool {
	_, ok := constants[name]
	return ok
}

// function describes one callable of the grammar.
type function struct {
	eval           func(complex128) (complex128, error)
	transcendental bool
}

// realOnly adapts a real-valued function, rejecting non-real arguments.
func realOnly(name string, f func(float64) float64) func(complex128) (complex128, error) {
	return func(z complex128) (complex128, error) {
		if math.Abs(imag(z)) > realTolerance {
			return 0, apperrors.NewEvalError(name, "argument must be real, got imaginary part %g", imag(z))
		}
		return complex(f(real(z)), 0), nil
	}
}

// total adapts a total complex function.
func total(f func(complex128) complex128) func(complex128) (complex128, error) {
	return func(z complex128) (complex128, error) { return f(z), nil }
}

var functions = map[string]function{
	"sin":  {eval: total(cmplx.Sin), transcendental: true},
	"cos":  {eval: total(cmplx.Cos), transcendental: true},
	"tan":  {eval: total(cmplx.Tan), transcendental: true},
	"exp":  {eval: total(cmplx.Exp), transcendental: true},
	"ln":   {eval: evalLn, transcendental: true},
	"log":  {eval: evalLog10, transcendental: true},
	"sqrt": {eval: total(cmplx.Sqrt)},
	"abs":  {eval: func(z complex128) (complex128, error) { return complex(cmplx.Abs(z), 0), nil }},
	"floor": {eval: realOnly("floor", math.Floor)},
	"ceil":  {eval: realOnly("ceil", math.Ceil)},
}

func evalLn(z complex128) (complex128, error) {
	if z == 0 {
		return 0, apperrors.NewEvalError("ln", "logarithm of zero is undefined")
	}
	return cmplx.Log(z), nil
}

func evalLog10(z complex128) (complex128, error) {
	if z == 0 {
		return 0, apperrors.NewEvalError("log", "logarithm of zero is undefined")
	}
	return cmplx.Log10(z), nil
}

// IsFunction reports whether name is a supported function.
func IsFunction(name string) bool {
	_, ok := functions[name]
	return ok
}

// IsTranscendentalFunc reports whether name is one of the transcendental
// functions that weigh into difficulty classification.
func IsTranscendentalFunc(name string) bool {
	f, ok := functions[name]
	return ok && f.transcendental
}

// Eval computes the numeric value of a tree, binding free variables through
// the vars map. Variable binding is structural: the symbol is resolved at
// its tree node, so no textual substitution (and none of its partial-token
// collision hazards) is involved.
//
// Parameters:
//   - n: Root of the tree to evaluate.
//   - vars: Values for free variables; may be nil for closed expressions.
//
// Returns:
//   - complex128: The value. Arithmetic is complex so the constant i evaluates.
//   - error: An apperrors.EvalError for undefined operations (division by
//     zero, logarithm of zero, unbound variables, unknown functions).
func Eval(n Node, vars map[string]complex128) (complex128, error) {
	switch v := n.(type) {
	case *Number:
		return complex(v.Value, 0), nil

	case *Variable:
		if c, ok := constants[v.Name]; ok {
			return c, nil
		}
		if val, ok := vars[v.Name]; ok {
			return val, nil
		}
		return 0, apperrors.NewEvalError("variable", "unbound variable %q", v.Name)

	case *Unary:
		val, err := Eval(v.Operand, vars)
		if err != nil {
			return 0, err
		}
		return -val, nil

	case *Binary:
		left, err := Eval(v.Left, vars)
		if err != nil {
			return 0, err
		}
		right, err := Eval(v.Right, vars)
		if err != nil {
			return 0, err
		}
		return applyBinary(v.Op, left, right)

	case *Call:
		fn, ok := functions[v.Name]
		if !ok {
			return 0, apperrors.NewEvalError("call", "unknown function %q", v.Name)
		}
		if len(v.Args) != 1 {
			return 0, apperrors.NewEvalError(v.Name, "expected 1 argument, got %d", len(v.Args))
		}
		arg, err := Eval(v.Args[0], vars)
		if err != nil {
			return 0, err
		}
		return fn.eval(arg)
	}
	return 0, apperrors.NewEvalError("eval", "unsupported node type %T", n)
}

// applyBinary applies one binary operator to evaluated operands.
func applyBinary(op Op, left, right complex128) (complex128, error) {
	switch op {
	case OpAdd:
		return left + right, nil
	case OpSub:
		return left - right, nil
	case OpMul:
		return left * right, nil
	case OpDiv:
		if right == 0 {
			return 0, apperrors.NewEvalError("division", "division by zero")
		}
		return left / right, nil
	case OpPow:
		return cmplx.Pow(left, right), nil
	}
	return 0, apperrors.NewEvalError("operator", "unsupported operator %q", op.Symbol())
}

// EvalReal evaluates a tree expected to produce a finite real value,
// binding real variable values. It is the workhorse of coefficient
// extraction and visualization sampling.
//
// Parameters:
//   - n: Root of the tree to evaluate.
//   - vars: Real values for free variables; may be nil.
//
// Returns:
//   - float64: The real value.
//   - error: An apperrors.EvalError if evaluation fails or the result is
//     not a finite real.
func EvalReal(n Node, vars map[string]float64) (float64, error) {
	cvars := make(map[string]complex128, len(vars))
	for name, val := range vars {
		cvars[name] = complex(val, 0)
	}
	val, err := Eval(n, cvars)
	if err != nil {
		return 0, err
	}
	if !IsFiniteReal(val) {
		return 0, apperrors.NewEvalError("eval", "result %v is not a finite real number", val)
	}
	return real(val), nil
}

// IsFiniteReal reports whether z is a finite real value within tolerance.
func IsFiniteReal(z complex128) bool {
	if math.IsNaN(real(z)) || math.IsInf(real(z), 0) {
		return false
	}
	if math.IsNaN(imag(z)) || math.IsInf(imag(z), 0) {
		return false
	}
	return math.Abs(imag(z)) <= realTolerance
}
