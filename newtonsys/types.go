package newtonsys

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/dkoval/rootfind/jacobian"
)

// Sentinel errors returned by the system solver.
var (
	// ErrEmptyGuess indicates that an empty initial vector was supplied.
	ErrEmptyGuess = errors.New("newtonsys: x0 must be a non-empty vector")

	// ErrNonSquare indicates that F maps R^n to R^m with m != n; Newton's
	// method requires a square system.
	ErrNonSquare = errors.New("newtonsys: system must be square")

	// ErrBadJacobianShape indicates that the Jacobian is not n×n for an
	// n-dimensional system.
	ErrBadJacobianShape = errors.New("newtonsys: jacobian must be square with the system dimension")

	// ErrBadTolF indicates that a non-positive residual tolerance was configured.
	ErrBadTolF = errors.New("newtonsys: TolF must be positive")

	// ErrBadTolX indicates that a non-positive step tolerance was configured.
	ErrBadTolX = errors.New("newtonsys: TolX must be positive")

	// ErrBadMaxIter indicates that a non-positive iteration cap was configured.
	ErrBadMaxIter = errors.New("newtonsys: MaxIter must be positive")

	// ErrBadAlpha0 indicates that a non-positive initial step scale was configured.
	ErrBadAlpha0 = errors.New("newtonsys: Alpha0 must be positive")

	// ErrBadC1 indicates an Armijo constant outside (0,1).
	ErrBadC1 = errors.New("newtonsys: C1 must be in (0,1)")

	// ErrBadShrink indicates a backtracking factor outside (0,1).
	ErrBadShrink = errors.New("newtonsys: LSShrink must be in (0,1)")

	// ErrBadLSMaxSteps indicates a negative backtracking budget.
	ErrBadLSMaxSteps = errors.New("newtonsys: LSMaxSteps must be non-negative")
)

// VectorFunc is the vector evaluator contract: a pure function mapping
// a point in R^n to a residual in R^n, safe to call repeatedly with
// the same argument. Implementations must not retain or mutate the
// slice they receive, and must return a slice they do not reuse
// across calls.
type VectorFunc func([]float64) []float64

// JacobianFunc produces the analytic n×n Jacobian of the system at a
// point. Implementations must not retain the slice they receive.
type JacobianFunc func([]float64) *mat.Dense

// Result is the immutable outcome of a system solve.
//
// Root            – best estimate of the solution vector.
// Converged       – true iff ‖F(Root)‖₂ <= TolF was reached (a
//                   stagnation stop sets this only when the residual
//                   independently satisfies TolF).
// Iterations      – count of accepted Newton steps; a step rejected by
//                   the stagnation check is not counted.
// ResidualNorm    – ‖F(Root)‖₂ at termination.
// StepNorm        – ‖dx‖₂ of the last computed Newton step (0 when the
//                   initial guess already satisfies TolF).
// ResidualHistory – residual norms, seeded with the initial residual;
//                   len(ResidualHistory) == Iterations+1.
// Message         – human-readable terminal condition.
type Result struct {
	Root            []float64
	Converged       bool
	Iterations      int
	ResidualNorm    float64
	StepNorm        float64
	ResidualHistory []float64
	Message         string
}

// Options configures the system solve.
//
// Jacobian   – analytic Jacobian function; nil selects finite
//              differences (FDMethod, FDEps) each iteration.
// TolF       – convergence tolerance on ‖F(x)‖₂. Default 1e-10.
// TolX       – stagnation tolerance on ‖dx‖₂. Default 1e-12.
// MaxIter    – maximum Newton iterations. Default 50.
// LineSearch – enable Armijo backtracking. Default true.
// Alpha0     – initial step scale. Default 1.0.
// C1         – Armijo sufficient-decrease constant. Default 1e-4.
// LSShrink   – backtracking shrink factor in (0,1). Default 0.5.
// LSMaxSteps – maximum backtracking steps. Default 20.
// FDMethod   – finite-difference scheme when Jacobian is nil.
//              Default jacobian.Central.
// FDEps      – finite-difference step scale. Default 1e-6.
type Options struct {
	Jacobian   JacobianFunc
	TolF       float64
	TolX       float64
	MaxIter    int
	LineSearch bool
	Alpha0     float64
	C1         float64
	LSShrink   float64
	LSMaxSteps int
	FDMethod   jacobian.Method
	FDEps      float64
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithJacobian supplies an analytic Jacobian, bypassing finite
// differences. Passing nil restores the finite-difference default.
func WithJacobian(jac JacobianFunc) Option {
	return func(o *Options) {
		o.Jacobian = jac
	}
}

// WithTolF sets the residual-norm convergence tolerance.
// Must pass a positive value; zero or negative panic with ErrBadTolF.
func WithTolF(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolF.Error())
		}
		o.TolF = tol
	}
}

// WithTolX sets the step-norm stagnation tolerance.
// Must pass a positive value; zero or negative panic with ErrBadTolX.
func WithTolX(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolX.Error())
		}
		o.TolX = tol
	}
}

// WithMaxIter caps the number of Newton iterations.
// Must pass a positive value; zero or negative panic with ErrBadMaxIter.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIter.Error())
		}
		o.MaxIter = n
	}
}

// WithLineSearch enables or disables the Armijo backtracking line
// search. Disabled, every iteration takes the full Alpha0 step.
func WithLineSearch(enabled bool) Option {
	return func(o *Options) {
		o.LineSearch = enabled
	}
}

// WithAlpha0 sets the initial step scale.
// Must pass a positive value; zero or negative panic with ErrBadAlpha0.
func WithAlpha0(alpha float64) Option {
	return func(o *Options) {
		if alpha <= 0 {
			panic(ErrBadAlpha0.Error())
		}
		o.Alpha0 = alpha
	}
}

// WithC1 sets the Armijo sufficient-decrease constant.
// Must lie in (0,1); anything else panics with ErrBadC1.
func WithC1(c1 float64) Option {
	return func(o *Options) {
		if c1 <= 0 || c1 >= 1 {
			panic(ErrBadC1.Error())
		}
		o.C1 = c1
	}
}

// WithLSShrink sets the backtracking shrink factor.
// Must lie in (0,1); anything else panics with ErrBadShrink.
func WithLSShrink(shrink float64) Option {
	return func(o *Options) {
		if shrink <= 0 || shrink >= 1 {
			panic(ErrBadShrink.Error())
		}
		o.LSShrink = shrink
	}
}

// WithLSMaxSteps caps the number of backtracking steps.
// Must be non-negative; negative panics with ErrBadLSMaxSteps.
// Zero keeps the line search enabled but accepts the first candidate.
func WithLSMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadLSMaxSteps.Error())
		}
		o.LSMaxSteps = n
	}
}

// WithFDMethod selects the finite-difference scheme used when no
// analytic Jacobian is supplied. Validity is checked when the
// estimator runs.
func WithFDMethod(m jacobian.Method) Option {
	return func(o *Options) {
		o.FDMethod = m
	}
}

// WithFDEps sets the finite-difference step scale.
// Must pass a positive value; zero or negative panic with jacobian.ErrBadEps.
func WithFDEps(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			panic(jacobian.ErrBadEps.Error())
		}
		o.FDEps = eps
	}
}

// DefaultOptions returns an Options struct initialized with the
// package defaults.
//
// Defaults:
//   - Jacobian:   nil (finite differences)
//   - TolF:       1e-10
//   - TolX:       1e-12
//   - MaxIter:    50
//   - LineSearch: true
//   - Alpha0:     1.0
//   - C1:         1e-4
//   - LSShrink:   0.5
//   - LSMaxSteps: 20
//   - FDMethod:   jacobian.Central
//   - FDEps:      1e-6
func DefaultOptions() Options {
	return Options{
		Jacobian:   nil,
		TolF:       1e-10,
		TolX:       1e-12,
		MaxIter:    50,
		LineSearch: true,
		Alpha0:     1.0,
		C1:         1e-4,
		LSShrink:   0.5,
		LSMaxSteps: 20,
		FDMethod:   jacobian.Central,
		FDEps:      1e-6,
	}
}
