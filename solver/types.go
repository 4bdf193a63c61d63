package solver

import "errors"

// Sentinel errors returned by the façade.
var (
	// ErrMissingParam indicates that a parameter required by the chosen
	// method was not supplied.
	ErrMissingParam = errors.New("solver: missing required parameter")

	// ErrUnknownMethod indicates a Method value outside the recognized
	// constants.
	ErrUnknownMethod = errors.New("solver: unknown method")

	// ErrBadTol indicates that a non-positive tolerance was configured.
	ErrBadTol = errors.New("solver: Tol must be positive")

	// ErrBadMaxIter indicates that a non-positive iteration cap was configured.
	ErrBadMaxIter = errors.New("solver: MaxIter must be positive")
)

// Func is the scalar evaluator contract: a pure one-argument
// real-valued function.
type Func func(float64) float64

// Method identifies a scalar root-finding algorithm.
type Method int

const (
	// Bisection selects bracket halving; requires WithBracket.
	Bisection Method = iota

	// Secant selects the two-point secant method; requires WithSeeds.
	Secant

	// Newton selects Newton–Raphson; requires WithSeed and WithDerivative.
	Newton

	// Brent selects Brent's hybrid method; requires WithBracket.
	Brent
)

// String returns the lower-case method name.
func (m Method) String() string {
	switch m {
	case Bisection:
		return "bisection"
	case Secant:
		return "secant"
	case Newton:
		return "newton"
	case Brent:
		return "brent"
	default:
		return "unknown"
	}
}

// Result is the normalized outcome of a dispatched scalar solve.
//
// Root       – best estimate of the solution.
// Iterations – completed iterations of the underlying method.
// Converged  – true iff a stopping tolerance was satisfied.
// History    – the underlying method's iterate history.
// AFinal,
// BFinal     – final bracket bounds; meaningful only for the
//              bracketing methods (Bisection, Brent), zero otherwise.
type Result struct {
	Root       float64
	Iterations int
	Converged  bool
	History    []float64
	AFinal     float64
	BFinal     float64
}

// Options collects the dispatch parameters. Presence flags distinguish
// "not supplied" from a legitimate zero value, so Solve can report
// missing parameters precisely.
//
// Df         – derivative for Newton (nil when unset).
// X0, X1     – seeds; HasX0/HasX1 mark which were supplied.
// A, B       – bracket endpoints; HasBracket marks that both were supplied.
// Tol        – tolerance forwarded to the underlying method. Default 1e-8.
// MaxIter    – iteration cap forwarded to the underlying method. Default 50.
type Options struct {
	Df         Func
	X0, X1     float64
	HasX0      bool
	HasX1      bool
	A, B       float64
	HasBracket bool
	Tol        float64
	MaxIter    int
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithSeed supplies the single initial guess used by Newton (and the
// first secant seed).
func WithSeed(x0 float64) Option {
	return func(o *Options) {
		o.X0 = x0
		o.HasX0 = true
	}
}

// WithSeeds supplies the two initial guesses used by the secant method.
func WithSeeds(x0, x1 float64) Option {
	return func(o *Options) {
		o.X0 = x0
		o.X1 = x1
		o.HasX0 = true
		o.HasX1 = true
	}
}

// WithBracket supplies the interval endpoints used by the bracketing
// methods (Bisection, Brent).
func WithBracket(a, b float64) Option {
	return func(o *Options) {
		o.A = a
		o.B = b
		o.HasBracket = true
	}
}

// WithDerivative supplies f′ for Newton's method.
func WithDerivative(df Func) Option {
	return func(o *Options) {
		o.Df = df
	}
}

// WithTol sets the tolerance forwarded to the underlying method.
// Must pass a positive value; zero or negative panic with ErrBadTol.
func WithTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTol.Error())
		}
		o.Tol = tol
	}
}

// WithMaxIter sets the iteration cap forwarded to the underlying method.
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
// façade defaults.
//
// Defaults:
//   - Tol:     1e-8
//   - MaxIter: 50
func DefaultOptions() Options {
	return Options{
		Tol:     1e-8,
		MaxIter: 50,
	}
}
