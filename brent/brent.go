package brent

import "math"

// Find locates a root of f(x) = 0 on the bracket [a,b] using Brent's
// method.
//
// Returns:
//
//   - Result: root estimate, iteration count, convergence flag, trial
//     point history and the final bracket endpoints.
//   - err:    ErrInvalidBracket if f(a) and f(b) do not straddle zero.
//
// Preconditions and validation (in order):
//  1. f(a) == 0 or f(b) == 0 short-circuits: that endpoint is returned
//     with zero iterations and Converged=true.
//  2. f(a)*f(b) must be negative (ErrInvalidBracket otherwise).
//
// Per iteration the method proposes a trial point s by inverse
// quadratic interpolation when f(a), f(b), f(c) are pairwise distinct,
// or by the secant formula through a and b otherwise, and replaces s
// with the bisection midpoint when any of the acceptance checks fails
// (see the package documentation). After evaluating f(s) the bracket
// is updated to preserve the opposite-sign invariant and the endpoints
// are swapped so that b always holds the point with smaller |f|.
//
// Converged when |f(b)| < Tol; exhausting MaxIter returns the best
// point with Converged=false: soft non-convergence, never an error.
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

	// 5) Order the endpoints so b is the better approximation.
	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}

	c := a
	fc := fa

	history := make([]float64, 0, cfg.MaxIter+1)
	history = append(history, b)

	// d trails one step behind c; the stall checks that reference it are
	// unconditionally false until the first iteration has assigned it.
	var d float64
	havePrevD := false

	// mflag records whether the previous step was a bisection.
	mflag := true
	var s float64

	for iteration := 1; iteration <= cfg.MaxIter; iteration++ {
		// 6) Propose a trial point.
		if fa != fc && fb != fc {
			// Inverse quadratic interpolation through (a,fa), (b,fb), (c,fc).
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// Secant step through a and b.
			s = b - fb*(b-a)/(fb-fa)
		}

		// 7) Acceptance checks: fall back to bisection when the proposal
		//    is outside the safe sub-interval, fails to halve the recent
		//    progress, or the bracket is already below Tol.
		var condition1 bool
		if b > a {
			condition1 = !((3*a+b)/4 < s && s < b)
		} else {
			condition1 = !(b < s && s < (3*a+b)/4)
		}
		condition2 := mflag && math.Abs(s-b) >= math.Abs(b-c)/2
		condition3 := false
		condition5 := false
		if havePrevD {
			condition3 = !mflag && math.Abs(s-b) >= math.Abs(c-d)/2
			condition5 = !mflag && math.Abs(c-d) < cfg.Tol
		}
		condition4 := mflag && math.Abs(b-c) < cfg.Tol

		if condition1 || condition2 || condition3 || condition4 || condition5 {
			s = (a + b) / 2
			mflag = true
		} else {
			mflag = false
		}

		// 8) Evaluate, rotate the history points, update the bracket.
		fs := f(s)
		history = append(history, s)

		d = c
		havePrevD = true
		c = b
		fc = fb

		if fa*fs < 0 {
			b = s
			fb = fs
		} else {
			a = s
			fa = fs
		}

		// Keep b as the point with smaller |f|.
		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}

		if math.Abs(fb) < cfg.Tol {
			return Result{Root: b, Iterations: iteration, Converged: true, History: history, AFinal: a, BFinal: b}, nil
		}
	}

	// 9) MaxIter exhausted: report the best point, not converged.
	return Result{Root: b, Iterations: cfg.MaxIter, Converged: false, History: history, AFinal: a, BFinal: b}, nil
}
