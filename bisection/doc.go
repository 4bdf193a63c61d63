// Package bisection implements the bisection method for scalar
// root finding on a bracketing interval.
//
// Bisection locates a root of f(x) = 0 inside [a,b] given that f(a)
// and f(b) have opposite signs. Each iteration halves the bracket by
// evaluating f at the midpoint and keeping the half whose endpoints
// still straddle the root, so the bracket invariant holds at every
// step and the method cannot diverge.
//
// Complexity:
//
//	– Time:  O(MaxIter) function evaluations, one per iteration.
//	– Space: O(MaxIter) for the iterate history.
//
// Convergence:
//
//	Linear, with rate 1/2: the bracket half-width after k steps is at
//	most (b−a)/2^(k+1). Robust but slow compared to secant or Newton.
//
// Options:
//
//	– Tol:     stopping tolerance on |f(mid)| and on the half-width.
//	– MaxIter: maximum number of halving steps.
//
// Errors (sentinel):
//
//	– ErrInvalidBracket if f(a) and f(b) do not have opposite signs.
//
// Example usage:
//
//	res, err := bisection.Find(func(x float64) float64 { return x*x - 2 }, 1, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("root=%.8f after %d iterations\n", res.Root, res.Iterations)
package bisection
