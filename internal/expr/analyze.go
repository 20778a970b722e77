package expr

import (
	"math"
	"sort"

	apperrors "github.com/agbru/stepsolve/internal/errors"
)

// Variables returns the sorted free variable names of a tree. The named
// constants e, pi, and i are not free variables.
func Variables(n Node) []string {
	seen := map[string]struct{}{}
	collectVariables(n, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectVariables(n Node, out map[string]struct{}) {
	switch v := n.(type) {
	case *Variable:
		if !IsConstant(v.Name) {
			out[v.Name] = struct{}{}
		}
	case *Unary:
		collectVariables(v.Operand, out)
	case *Binary:
		collectVariables(v.Left, out)
		collectVariables(v.Right, out)
	case *Call:
		for _, arg := range v.Args {
			collectVariables(arg, out)
		}
	}
}

// DegreeIn computes the highest integer exponent of the named variable by
// tree traversal: a power node whose base is exactly that variable
// contributes its evaluated exponent, any other occurrence of the variable
// contributes degree 1, and the maximum wins.
//
// Parameters:
//   - n: Root of the tree.
//   - name: The variable to measure.
//
// Returns:
//   - int: The degree; 0 when the variable does not occur.
//   - error: When an exponent over the variable is not a constant integer.
func DegreeIn(n Node, name string) (int, error) {
	switch v := n.(type) {
	case *Number:
		return 0, nil

	case *Variable:
		if v.Name == name {
			return 1, nil
		}
		return 0, nil

	case *Unary:
		return DegreeIn(v.Operand, name)

	case *Binary:
		if v.Op == OpPow {
			if base, ok := v.Left.(*Variable); ok && base.Name == name {
				return constantExponent(v.Right)
			}
		}
		left, err := DegreeIn(v.Left, name)
		if err != nil {
			return 0, err
		}
		right, err := DegreeIn(v.Right, name)
		if err != nil {
			return 0, err
		}
		return max(left, right), nil

	case *Call:
		deg := 0
		for _, arg := range v.Args {
			d, err := DegreeIn(arg, name)
			if err != nil {
				return 0, err
			}
			deg = max(deg, d)
		}
		return deg, nil
	}
	return 0, nil
}

// constantExponent evaluates an exponent subtree that must be a constant
// integer for degree detection to succeed.
func constantExponent(n Node) (int, error) {
	val, err := Eval(n, nil)
	if err != nil {
		return 0, apperrors.WrapError(err, "exponent is not constant")
	}
	if !IsFiniteReal(val) {
		return 0, apperrors.NewEvalError("exponent", "exponent %v is not a finite real", val)
	}
	r := real(val)
	rounded := math.Round(r)
	if math.Abs(r-rounded) > realTolerance {
		return 0, apperrors.NewEvalError("exponent", "exponent %g is not an integer", r)
	}
	return int(rounded), nil
}

// CountOperators counts the operator nodes (binary and unary) of a tree.
// It feeds difficulty classification.
func CountOperators(n Node) int {
	switch v := n.(type) {
	case *Unary:
		return 1 + CountOperators(v.Operand)
	case *Binary:
		return 1 + CountOperators(v.Left) + CountOperators(v.Right)
	case *Call:
		count := 0
		for _, arg := range v.Args {
			count += CountOperators(arg)
		}
		return count
	}
	return 0
}

// HasCall reports whether the tree contains any function call.
func HasCall(n Node) bool {
	switch v := n.(type) {
	case *Call:
		return true
	case *Unary:
		return HasCall(v.Operand)
	case *Binary:
		return HasCall(v.Left) || HasCall(v.Right)
	}
	return false
}

// HasTranscendental reports whether the tree contains a call to one of the
// transcendental functions (sin, cos, tan, log, ln, exp).
func HasTranscendental(n Node) bool {
	switch v := n.(type) {
	case *Call:
		if IsTranscendentalFunc(v.Name) {
			return true
		}
		for _, arg := range v.Args {
			if HasTranscendental(arg) {
				return true
			}
		}
	case *Unary:
		return HasTranscendental(v.Operand)
	case *Binary:
		return HasTranscendental(v.Left) || HasTranscendental(v.Right)
	}
	return false
}

// IsOperatorNode reports whether the node is a binary operator, unary
// operator, or function call. The calculation solver uses this to decide
// when a one-level decomposition is worth an extra step.
func IsOperatorNode(n Node) bool {
	switch n.(type) {
	case *Binary, *Unary, *Call:
		return true
	}
	return false
}
