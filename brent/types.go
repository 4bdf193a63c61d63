package brent

import "errors"

// Sentinel errors returned by the Brent implementation.
var (
	// ErrInvalidBracket indicates that f(a) and f(b) share a sign, so the
	// interval [a,b] is not guaranteed to contain a root.
	ErrInvalidBracket = errors.New("brent: f(a) and f(b) must have opposite signs (root must be bracketed)")

	// ErrBadTol indicates that a non-positive tolerance was configured.
	ErrBadTol = errors.New("brent: Tol must be positive")

	// ErrBadMaxIter indicates that a non-positive iteration cap was configured.
	ErrBadMaxIter = errors.New("brent: MaxIter must be positive")
)

// Func is the scalar evaluator contract: a pure one-argument
// real-valued function, safe to call repeatedly with the same argument.
type Func func(float64) float64

// Result is the immutable outcome of a Brent run.
//
// Root       – best estimate of the solution (the point with smaller |f|).
// Iterations – count of completed iterations.
// Converged  – true iff |f(Root)| < Tol was reached.
// History    – ordered trial points, seeded with the initial best
//              endpoint; len(History) == Iterations+1.
// AFinal,
// BFinal     – final bracket endpoints; the function values there have
//              opposite signs (or one is exactly zero) and the root lies
//              between them. Note BFinal holds the best point, so
//              AFinal <= Root <= BFinal or the reverse.
type Result struct {
	Root       float64
	Iterations int
	Converged  bool
	History    []float64
	AFinal     float64
	BFinal     float64
}

// Options configures the Brent run.
//
// Tol     – stopping tolerance; converged when |f(b)| < Tol. Also used
//           by the bracket-width fallback checks. Must be > 0.
//           Default 1e-8.
// MaxIter – maximum iterations. Must be > 0. Default 100.
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

// WithMaxIter caps the number of iterations.
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
// package defaults.
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
