package bisection

import "errors"

// Sentinel errors returned by the bisection implementation.
var (
	// ErrInvalidBracket indicates that f(a) and f(b) share a sign, so the
	// interval [a,b] is not guaranteed to contain a root.
	ErrInvalidBracket = errors.New("bisection: f(a) and f(b) must have opposite signs (root must be bracketed)")

	// ErrBadTol indicates that a non-positive tolerance was configured.
	ErrBadTol = errors.New("bisection: Tol must be positive")

	// ErrBadMaxIter indicates that a non-positive iteration cap was configured.
	ErrBadMaxIter = errors.New("bisection: MaxIter must be positive")
)

// Func is the scalar evaluator contract shared by all scalar solvers:
// a pure one-argument real-valued function, safe to call repeatedly
// with the same argument.
type Func func(float64) float64

// Result is the immutable outcome of a bisection run.
//
// Root       – best midpoint estimate of the solution.
// Iterations – count of completed halving steps (0 on an exact-endpoint hit).
// Converged  – true iff a stopping tolerance was satisfied, not merely
//              that MaxIter ran out.
// History    – ordered midpoint iterates, seeded with the initial midpoint;
//              len(History) == Iterations+1 except on an exact-endpoint hit.
// AFinal,
// BFinal     – final bracket bounds; AFinal <= Root <= BFinal and the
//              function values at the bounds have opposite signs (or one
//              is exactly zero).
type Result struct {
	Root       float64
	Iterations int
	Converged  bool
	History    []float64
	AFinal     float64
	BFinal     float64
}

// Options configures the bisection run.
//
// Tol     – stopping tolerance; converged when |f(mid)| <= Tol or the
//           bracket half-width <= Tol. Must be > 0. Default 1e-8.
// MaxIter – maximum halving steps. Must be > 0. Default 100.
type Options struct {
	Tol     float64
	MaxIter int
}

// Option represents a functional option for configuring Find.
type Option func(*Options)

// WithTol sets the stopping tolerance.
// Must pass a positive value; zero or negative panic with ErrBadTol.
func WithTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTol.Error())
		}
		o.Tol = tol
	}
}

// WithMaxIter caps the number of halving steps.
// Must pass a positive value; zero or negative panic with ErrBadMaxIter.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIter.Error())
		}
		o.MaxIter = n
	}
}

// DefaultOptions returns an Options struct initialized with the
// package defaults. Use this as a starting point for further
// functional-option overrides.
//
// Defaults:
//   - Tol:     1e-8
//   - MaxIter: 100
func DefaultOptions() Options {
	return Options{
		Tol:     1e-8,
		MaxIter: 100,
	}
}
