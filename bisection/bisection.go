package bisection

import "math"

// Find locates a root of f(x) = 0 on the bracket [a,b] by bisection.
//
// Returns:
//
//   - Result: root estimate, iteration count, convergence flag, midpoint
//     history and the final bracket bounds.
//   - err:    ErrInvalidBracket if f(a) and f(b) do not straddle zero.
//
// Preconditions and validation (in order):
//  1. f(a) == 0 or f(b) == 0 short-circuits: that endpoint is returned
//     with zero iterations and Converged=true.
//  2. f(a)*f(b) must be negative (ErrInvalidBracket otherwise).
//
// The current estimate is always the midpoint of the current bracket;
// an iteration evaluates f there, discards the half of the bracket whose
// endpoints share a sign, and records the new midpoint. Stopping rules,
// checked before each halving:
//
//   - |f(mid)| <= Tol, or
//   - bracket half-width <= Tol.
//
// Exhausting MaxIter returns the last midpoint with Converged=false:
// soft non-convergence, never an error.
func Find(f Func, a, b float64, opts ...Option) (Result, error) {
	// 1) Build Options from defaults plus overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Evaluate the endpoints once each.
	fa := f(a)
	fb := f(b)

	// 3) Exact hit on an endpoint: converged before the first iteration.
	if fa == 0 {
		return Result{Root: a, Iterations: 0, Converged: true, History: []float64{a}, AFinal: a, BFinal: a}, nil
	}
	if fb == 0 {
		return Result{Root: b, Iterations: 0, Converged: true, History: []float64{b}, AFinal: b, BFinal: b}, nil
	}

	// 4) The endpoints must straddle the root. Fail fast before iterating.
	if fa*fb > 0 {
		return Result{}, ErrInvalidBracket
	}

	// 5) Iterate: evaluate at the current midpoint, keep the sign-change
	//    half, record the new midpoint. History is seeded with the initial
	//    midpoint, so len(History) == completed halvings + 1.
	left, right := a, b
	fleft := fa
	root := (left + right) / 2
	history := make([]float64, 0, cfg.MaxIter+1)
	history = append(history, root)

	for k := 0; k < cfg.MaxIter; k++ {
		fm := f(root)

		if math.Abs(fm) <= cfg.Tol || (right-left)/2 <= cfg.Tol {
			return Result{Root: root, Iterations: k, Converged: true, History: history, AFinal: left, BFinal: right}, nil
		}

		if fm*fleft < 0 {
			right = root
		} else {
			left = root
			fleft = fm
		}

		root = (left + right) / 2
		history = append(history, root)
	}

	// 6) MaxIter exhausted: report the last midpoint, not converged.
	return Result{Root: root, Iterations: cfg.MaxIter, Converged: false, History: history, AFinal: left, BFinal: right}, nil
}
