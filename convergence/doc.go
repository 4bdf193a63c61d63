// Package convergence estimates the empirical order of convergence of
// an iterative method from its error sequence.
//
// Given errors e_n = |x_n − x*| for successive iterates, the classical
// three-point formula estimates the order p from each consecutive
// triple:
//
//	p = ln(e_{n+1}/e_n) / ln(e_n/e_{n−1})
//
// EstimateOrder filters out errors at or below a floor Eps (exact hits
// and floating-point noise carry no rate information), computes an
// estimate for every remaining triple, and returns the median to
// reduce sensitivity to outliers in the early, pre-asymptotic
// iterations.
//
// Expected values for the solvers in this module near a simple root:
//
//	– Bisection: p ≈ 1   (linear, rate 1/2)
//	– Secant:    p ≈ 1.618 (golden ratio)
//	– Newton:    p ≈ 2   (quadratic)
//
// Errors (sentinel):
//
//	– ErrTooFewPoints if fewer than 3 errors survive the floor.
//	– ErrNoEstimate   if no triple yields a finite estimate.
package convergence
