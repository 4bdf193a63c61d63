package jacobian

import "errors"

// Sentinel errors returned by the Jacobian estimator.
var (
	// ErrUnknownMethod indicates a difference scheme other than Forward
	// or Central.
	ErrUnknownMethod = errors.New("jacobian: method must be Forward or Central")

	// ErrBadEps indicates that a non-positive step scale was configured.
	ErrBadEps = errors.New("jacobian: Eps must be positive")
)

// VectorFunc is the vector evaluator contract: a pure function mapping
// a point in R^n to a value in R^m, safe to call repeatedly with the
// same argument. Implementations must not retain or mutate the slice
// they receive, and must return a slice they do not reuse across calls.
type VectorFunc func([]float64) []float64

// Method selects the finite-difference scheme.
type Method int

const (
	// Central differences: 2n evaluations, second-order accurate. Default.
	Central Method = iota

	// Forward differences: n evaluations, first-order accurate.
	Forward
)

// String returns the lower-case scheme name.
func (m Method) String() string {
	switch m {
	case Central:
		return "central"
	case Forward:
		return "forward"
	default:
		return "unknown"
	}
}

// Options configures the estimate.
//
// Method – difference scheme, Central (default) or Forward.
// Eps    – step scale; the per-coordinate step is Eps·(1+|x_j|).
//          Must be > 0. Default 1e-6.
type Options struct {
	Method Method
	Eps    float64
}

// Option represents a functional option for configuring Estimate.
type Option func(*Options)

// WithMethod selects the difference scheme. Validity is checked by
// Estimate so that an out-of-range value surfaces as ErrUnknownMethod
// rather than a panic.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithEps sets the step scale.
// Must pass a positive value; zero or negative panic with ErrBadEps.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			panic(ErrBadEps.Error())
		}
		o.Eps = eps
	}
}

// DefaultOptions returns an Options struct initialized with the
// package defaults.
//
// Defaults:
//   - Method: Central
//   - Eps:    1e-6
func DefaultOptions() Options {
	return Options{
		Method: Central,
		Eps:    1e-6,
	}
}
