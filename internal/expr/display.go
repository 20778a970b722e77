package expr

import (
	"strings"

	"github.com/agbru/stepsolve/internal/format"
)

// atomPrec is the precedence assigned to leaf nodes and calls when deciding
// where Display needs parentheses.
const atomPrec = precPow + 1

// Display renders a tree in math notation with the display symbols
// (− × ÷ ^) and the minimal parentheses needed to re-parse to the same
// structure. The rendering is deterministic for a given tree.
func Display(n Node) string {
	switch v := n.(type) {
	case *Number:
		return format.Number(v.Value)

	case *Variable:
		return v.Name

	case *Unary:
		inner := Display(v.Operand)
		if nodePrec(v.Operand) < precMul {
			inner = "(" + inner + ")"
		}
		return v.Op.Symbol() + inner

	case *Binary:
		prec := binaryPrec(v.Op)
		left := Display(v.Left)
		right := Display(v.Right)
		if v.Op == OpPow {
			// Right-associative: parenthesize an equal-precedence left side.
			if nodePrec(v.Left) <= prec {
				left = "(" + left + ")"
			}
			if nodePrec(v.Right) < prec {
				right = "(" + right + ")"
			}
			return left + v.Op.Symbol() + right
		}
		if nodePrec(v.Left) < prec {
			left = "(" + left + ")"
		}
		// Subtraction and division are not associative on the right.
		rightPrec := nodePrec(v.Right)
		if rightPrec < prec || (rightPrec == prec && (v.Op == OpSub || v.Op == OpDiv)) {
			right = "(" + right + ")"
		}
		return left + " " + v.Op.Symbol() + " " + right

	case *Call:
		args := make([]string, len(v.Args))
		for i, arg := range v.Args {
			args[i] = Display(arg)
		}
		return v.Name + "(" + strings.Join(args, ", ") + ")"
	}
	return ""
}

// nodePrec returns the precedence of the node's top operator, or atomPrec
// for leaves and calls.
func nodePrec(n Node) int {
	switch v := n.(type) {
	case *Unary:
		return precUnary
	case *Binary:
		return binaryPrec(v.Op)
	}
	return atomPrec
}

func binaryPrec(op Op) int {
	switch op {
	case OpAdd, OpSub:
		return precAdd
	case OpMul, OpDiv:
		return precMul
	case OpPow:
		return precPow
	}
	return atomPrec
}
