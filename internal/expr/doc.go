// Package expr implements the expression layer of the step explainer: a
// lexer and Pratt parser for elementary infix arithmetic, the resulting
// expression tree, complex-valued numeric evaluation with structural
// variable binding, and the tree walks (free variables, polynomial degree,
// operator counting) the solvers classify problems with.
//
// The grammar covers infix `+ - * / ^` with standard precedence
// (exponentiation is right-associative), unary minus, parentheses, function
// calls, implicit multiplication ("2x", "5(x+1)"), decimal literals, and
// the named constants e, pi, and i.
package expr
