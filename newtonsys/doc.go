// Package newtonsys solves square nonlinear systems F(x) = 0 with a
// damped Newton iteration, the heavy lifter of this module.
//
// Given F: R^n → R^n and an initial vector x0, each iteration:
//
//  1. Obtains the Jacobian J at the current point, either from a
//     caller-supplied analytic function or by finite differences
//     (see the jacobian package).
//  2. Solves the linear Newton system J·dx = −F(x) by LU; if the solve
//     fails on a singular or badly conditioned Jacobian, falls back to
//     an SVD minimum-norm least-squares step. The fallback is a
//     deliberate robustness choice, never an error.
//  3. Stops on stagnation when ‖dx‖₂ <= TolX, reporting convergence
//     only if the current residual already satisfies ‖F(x)‖₂ <= TolF;
//     a tiny step does not by itself mean the residual is small.
//  4. Takes the candidate x + α·dx with α = Alpha0, optionally
//     backtracking (α ← LSShrink·α, at most LSMaxSteps times) until the
//     Armijo sufficient-decrease condition on the squared residual
//     norm holds:
//
//     ‖F(x + α·dx)‖² <= (1 − C1·α)·‖F(x)‖²
//
//     The last candidate is accepted even if the budget runs out.
//  5. Accepts the candidate, appends its residual norm to the history,
//     and declares convergence when ‖F(x)‖₂ <= TolF.
//
// Euclidean norms are used throughout. A residual already below TolF
// at the initial guess returns immediately with zero iterations.
//
// Hard failures (raised before or during structural checks, never
// deferred):
//
//	– ErrEmptyGuess       if x0 is empty.
//	– ErrNonSquare        if len(F(x0)) != len(x0).
//	– ErrBadJacobianShape if the Jacobian is not n×n.
//
// Running out of iterations or stagnating is soft non-convergence:
// the Result carries Converged=false and a human-readable Message
// naming the terminal condition.
//
// Example usage:
//
//	F := func(v []float64) []float64 {
//	    return []float64{v[0]*v[0] + v[1]*v[1] - 1, v[0] - v[1]}
//	}
//	res, err := newtonsys.Solve(F, []float64{0.8, 0.6})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("root=%v ‖F‖=%.2e\n", res.Root, res.ResidualNorm)
package newtonsys
