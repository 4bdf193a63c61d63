package convergence

import "errors"

// Sentinel errors returned by the order estimator.
var (
	// ErrTooFewPoints indicates that fewer than three error values
	// survived the noise floor, so no triple can be formed.
	ErrTooFewPoints = errors.New("convergence: need at least 3 error values above the threshold to estimate order")

	// ErrNoEstimate indicates that every triple produced a degenerate or
	// non-finite estimate.
	ErrNoEstimate = errors.New("convergence: could not compute any valid order estimates from the error data")

	// ErrBadEps indicates that a negative noise floor was configured.
	ErrBadEps = errors.New("convergence: Eps must be non-negative")
)

// Options configures the estimate.
//
// Eps – noise floor; error values <= Eps are discarded before the
//       triples are formed. Must be >= 0. Default 1e-14.
type Options struct {
	Eps float64
}

// Option represents a functional option for configuring EstimateOrder.
type Option func(*Options)

// WithEps sets the noise floor.
// Must pass a non-negative value; negative panics with ErrBadEps.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic(ErrBadEps.Error())
		}
		o.Eps = eps
	}
}

// DefaultOptions returns an Options struct initialized with the
// package defaults.
//
// Defaults:
//   - Eps: 1e-14
func DefaultOptions() Options {
	return Options{Eps: 1e-14}
}
