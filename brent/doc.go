// Package brent implements Brent's method for scalar root finding on a
// bracketing interval.
//
// Brent's method combines three classical techniques (inverse
// quadratic interpolation, secant interpolation and bisection) to get
// both the bracket guarantee of bisection and superlinear speed near
// the root. At every step the method operates on three abscissae:
//
//	b – the last and best approximation to the root
//	a – the other bracket endpoint (|f(b)| <= |f(a)| always)
//	c – the previous value of b, with an older point d kept one step
//	    further back for the stall checks
//
// Each iteration proposes a trial point by inverse quadratic
// interpolation when f(a), f(b), f(c) are pairwise distinct, or by the
// secant formula otherwise, and falls back to the plain bisection
// midpoint whenever the proposal is not trustworthy:
//
//   - it lands outside the safe sub-interval between (3a+b)/4 and b,
//   - it fails to beat half of the previous step (or the one before),
//   - or the bracket itself has shrunk below Tol.
//
// The two stall checks that compare against |c−d| are defined to be
// false on the very first iteration, before d has been assigned.
//
// Convergence is declared when |f(b)| < Tol; the bracket invariant
// (opposite signs at a and b) is restored after every evaluation.
//
// Options:
//
//	– Tol:     stopping tolerance on |f(b)| and the bracket width checks.
//	– MaxIter: maximum iterations.
//
// Errors (sentinel):
//
//	– ErrInvalidBracket if f(a) and f(b) do not have opposite signs.
//
// Example usage:
//
//	res, err := brent.Find(func(x float64) float64 { return x*x - 2 }, 1, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("root=%.10f in %d iterations\n", res.Root, res.Iterations)
package brent
