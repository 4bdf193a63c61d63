package secant

import "errors"

// Sentinel errors returned by the secant implementation.
var (
	// ErrBadTol indicates that a non-positive tolerance was configured.
	ErrBadTol = errors.New("secant: Tol must be positive")

	// ErrBadMaxIter indicates that a non-positive iteration cap was configured.
	ErrBadMaxIter = errors.New("secant: MaxIter must be positive")

	// ErrBadMinDenom indicates that a non-positive denominator floor was configured.
	ErrBadMinDenom = errors.New("secant: MinDenom must be positive")
)

// Func is the scalar evaluator contract: a pure one-argument
// real-valued function, safe to call repeatedly with the same argument.
type Func func(float64) float64

// Result is the immutable outcome of a secant run.
//
// Root       – best estimate of the solution.
// Iterations – count of completed iterations; a step aborted by the
//              denominator floor is not counted.
// Converged  – true iff the step-size tolerance was satisfied.
// History    – ordered iterates, seeded with both initial guesses;
//              len(History) == Iterations+2 on a converged run.
type Result struct {
	Root       float64
	Iterations int
	Converged  bool
	History    []float64
}

// Options configures the secant run.
//
// Tol      – convergence tolerance on |x_{n+1} − x_n|. Must be > 0.
//            Default 1e-8.
// MaxIter  – maximum iterations. Must be > 0. Default 50.
// MinDenom – minimum allowed |f(x1) − f(x0)| before the run stops
//            gracefully. Must be > 0. Default 1e-14.
type Options struct {
	Tol      float64
	MaxIter  int
	MinDenom float64
}

// Option represents a functional option for configuring Find.
type Option func(*Options)

// WithTol sets the step-size stopping tolerance.
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

// WithMinDenom sets the denominator floor below which the secant slope
// is considered degenerate and the run stops with Converged=false.
// Must pass a positive value; zero or negative panic with ErrBadMinDenom.
func WithMinDenom(d float64) Option {
	return func(o *Options) {
		if d <= 0 {
			panic(ErrBadMinDenom.Error())
		}
		o.MinDenom = d
	}
}

// DefaultOptions returns an Options struct initialized with the
// package defaults.
//
// Defaults:
//   - Tol:      1e-8
//   - MaxIter:  50
//   - MinDenom: 1e-14
func DefaultOptions() Options {
	return Options{
		Tol:      1e-8,
		MaxIter:  50,
		MinDenom: 1e-14,
	}
}
