package newton

import "errors"

// Sentinel errors returned by the Newton implementation.
var (
	// ErrBadTol indicates that a non-positive tolerance was configured.
	ErrBadTol = errors.New("newton: Tol must be positive")

	// ErrBadMaxIter indicates that a non-positive iteration cap was configured.
	ErrBadMaxIter = errors.New("newton: MaxIter must be positive")

	// ErrBadMinDerivative indicates that a non-positive derivative floor was configured.
	ErrBadMinDerivative = errors.New("newton: MinDerivative must be positive")
)

// Func is the scalar evaluator contract, used for both f and its
// derivative: a pure one-argument real-valued function.
type Func func(float64) float64

// Result is the immutable outcome of a Newton run.
//
// Root       – best estimate of the solution.
// Iterations – count of completed Newton steps; a step aborted by the
//              derivative floor is not counted.
// Converged  – true iff the step-size tolerance was satisfied.
// History    – ordered iterates, seeded with x0;
//              len(History) == Iterations+1.
type Result struct {
	Root       float64
	Iterations int
	Converged  bool
	History    []float64
}

// Options configures the Newton run.
//
// Tol           – convergence tolerance on |x_{k+1} − x_k|. Must be > 0.
//                 Default 1e-8.
// MaxIter       – maximum iterations. Must be > 0. Default 50.
// MinDerivative – minimum allowed |f′(x)| before the run stops
//                 gracefully. Must be > 0. Default 1e-12.
type Options struct {
	Tol           float64
	MaxIter       int
	MinDerivative float64
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

// WithMaxIter caps the number of Newton steps.
// Must pass a positive value; zero or negative panic with ErrBadMaxIter.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIter.Error())
		}
		o.MaxIter = n
	}
}

// WithMinDerivative sets the floor below which |f′(x)| is considered
// degenerate and the run stops with Converged=false.
// Must pass a positive value; zero or negative panic with ErrBadMinDerivative.
func WithMinDerivative(d float64) Option {
	return func(o *Options) {
		if d <= 0 {
			panic(ErrBadMinDerivative.Error())
		}
		o.MinDerivative = d
	}
}

// DefaultOptions returns an Options struct initialized with the
// package defaults.
//
// Defaults:
//   - Tol:           1e-8
//   - MaxIter:       50
//   - MinDerivative: 1e-12
func DefaultOptions() Options {
	return Options{
		Tol:           1e-8,
		MaxIter:       50,
		MinDerivative: 1e-12,
	}
}
