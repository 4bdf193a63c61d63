package newton

import "math"

// Find solves f(x) = 0 by the Newton–Raphson method from the seed x0,
// using the caller-supplied derivative df.
//
// Returns:
//
//   - Result: root estimate, iteration count, convergence flag and the
//     full iterate history (seeded with x0).
//   - err:    always nil today; reserved for evaluator contracts that
//     can fail. All numeric trouble is reported softly via Converged.
//
// Failure modes (all soft, never an error):
//
//   - |df(x)| < MinDerivative: the tangent is too flat to divide by;
//     the current iterate is returned with Converged=false and the
//     failed step is not counted.
//   - MaxIter exhausted without the step size dropping below Tol.
func Find(f, df Func, x0 float64, opts ...Option) (Result, error) {
	// 1) Build Options from defaults plus overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Seed the iteration.
	x := x0
	history := make([]float64, 0, cfg.MaxIter+1)
	history = append(history, x)

	// 3) Iterate the tangent step.
	for k := 1; k <= cfg.MaxIter; k++ {
		fx := f(x)
		dfx := df(x)

		if math.Abs(dfx) < cfg.MinDerivative {
			// Degenerate tangent: stop gracefully, excluding this step.
			return Result{Root: x, Iterations: k - 1, Converged: false, History: history}, nil
		}

		xNew := x - fx/dfx
		history = append(history, xNew)

		if math.Abs(xNew-x) < cfg.Tol {
			return Result{Root: xNew, Iterations: k, Converged: true, History: history}, nil
		}

		x = xNew
	}

	// 4) MaxIter exhausted: soft non-convergence.
	return Result{Root: x, Iterations: cfg.MaxIter, Converged: false, History: history}, nil
}
