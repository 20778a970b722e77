package solve

import (
	"github.com/agbru/stepsolve/internal/expr"
)

// Difficulty classification thresholds. A transcendental function or a deep
// operator chain marks an expression advanced; any function call or more
// than one operator marks it intermediate.
const (
	advancedOperatorCount     = 3
	intermediateOperatorCount = 1
)

// classifyExpression derives the difficulty tag from the structure of a
// parsed expression tree. The classification is a deterministic function of
// the tree: operator-node count, function presence, and transcendental
// function presence.
func classifyExpression(n expr.Node) Difficulty {
	ops := expr.CountOperators(n)
	switch {
	case expr.HasTranscendental(n) || ops > advancedOperatorCount:
		return DifficultyAdvanced
	case expr.HasCall(n) || ops > intermediateOperatorCount:
		return DifficultyIntermediate
	default:
		return DifficultyBasic
	}
}
