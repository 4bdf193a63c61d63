// Package newton implements the Newton–Raphson method for scalar root
// finding with a caller-supplied derivative.
//
// Each iteration linearizes f at the current point and jumps to the
// zero of the tangent line:
//
//	x_{k+1} = x_k − f(x_k)/f′(x_k)
//
// Near a simple root the method converges quadratically (the number
// of correct digits roughly doubles each step), which makes it the
// fastest scalar method in this module when a derivative is available
// and the seed is good.
//
// Complexity:
//
//	– Time:  O(MaxIter) evaluations of f and f′ (one of each per step).
//	– Space: O(MaxIter) for the iterate history.
//
// Options:
//
//	– Tol:           stopping tolerance on the step size |x_{k+1} − x_k|.
//	– MaxIter:       maximum iterations.
//	– MinDerivative: floor on |f′(x)|; a flatter tangent stops the run
//	                 gracefully (Converged=false) instead of dividing by
//	                 a vanishing derivative.
//
// Example usage:
//
//	f := func(x float64) float64 { return x*x - 2 }
//	df := func(x float64) float64 { return 2 * x }
//	res, err := newton.Find(f, df, 1.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("root=%.10f in %d iterations\n", res.Root, res.Iterations)
package newton
