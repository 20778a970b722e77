// Package solve contains the solving core of the step explainer: the
// Solution data model, the Solver capability contract, the ordered solver
// registry, and the two concrete solvers (calculation and algebraic).
//
// Every Solve call is a pure function of its input and terminates with a
// well-formed Solution; internal failures surface as error-tagged Solutions,
// never as panics past the capability boundary.
package solve
