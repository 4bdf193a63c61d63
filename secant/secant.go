package secant

import "math"

// Find solves f(x) = 0 by the secant method from two initial guesses.
//
// The guesses need not bracket the root, but should be close to it for
// good convergence. Each iteration interpolates linearly through the
// last two iterates:
//
//	x2 = x1 − f(x1)·(x1 − x0) / (f(x1) − f(x0))
//
// Returns:
//
//   - Result: root estimate, iteration count, convergence flag and
//     the full iterate history (seeded with x0 and x1).
//   - err:    always nil today; reserved for evaluator contracts that
//     can fail. All numeric trouble is reported softly via Converged.
//
// Failure modes (all soft, never an error):
//
//   - |f(x1) − f(x0)| < MinDenom: the secant is too flat to divide by;
//     the last iterate is returned with Converged=false and the failed
//     step is not counted.
//   - MaxIter exhausted without the step size dropping below Tol.
func Find(f Func, x0, x1 float64, opts ...Option) (Result, error) {
	// 1) Build Options from defaults plus overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Seed the two-point state.
	fx0 := f(x0)
	fx1 := f(x1)

	history := make([]float64, 0, cfg.MaxIter+2)
	history = append(history, x0, x1)

	// 3) Iterate the linear interpolation.
	for k := 1; k <= cfg.MaxIter; k++ {
		denom := fx1 - fx0
		if math.Abs(denom) < cfg.MinDenom {
			// Degenerate slope: stop gracefully, excluding this step.
			return Result{Root: x1, Iterations: k - 1, Converged: false, History: history}, nil
		}

		x2 := x1 - fx1*(x1-x0)/denom
		history = append(history, x2)

		if math.Abs(x2-x1) <= cfg.Tol {
			return Result{Root: x2, Iterations: k, Converged: true, History: history}, nil
		}

		x0, x1 = x1, x2
		fx0, fx1 = fx1, f(x1)
	}

	// 4) MaxIter exhausted: soft non-convergence.
	return Result{Root: x1, Iterations: cfg.MaxIter, Converged: false, History: history}, nil
}
