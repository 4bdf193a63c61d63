// Package secant implements the secant method for scalar root finding
// from two initial guesses.
//
// The secant method replaces Newton's derivative with a finite slope
// through the last two iterates, so it needs no derivative and only one
// fresh function evaluation per iteration. The seeds do not have to
// bracket the root; convergence is superlinear (order ≈ 1.618, the
// golden ratio) near a simple root, but the method carries no bracket
// guarantee and may diverge for poorly chosen seeds; an accepted
// limitation, not a bug.
//
// Complexity:
//
//	– Time:  O(MaxIter) function evaluations (one per iteration after
//	         the two seed evaluations).
//	– Space: O(MaxIter) for the iterate history.
//
// Options:
//
//	– Tol:      stopping tolerance on the step size |x_{n+1} − x_n|.
//	– MaxIter:  maximum iterations.
//	– MinDenom: minimum allowed |f(x1) − f(x0)|; a flatter secant stops
//	            the run gracefully (Converged=false) instead of dividing
//	            by a vanishing denominator.
//
// Example usage:
//
//	res, err := secant.Find(func(x float64) float64 { return x*x - 2 }, 1, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("root=%.8f converged=%v\n", res.Root, res.Converged)
package secant
