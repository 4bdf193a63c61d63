package solver

import (
	"fmt"

	"github.com/dkoval/rootfind/bisection"
	"github.com/dkoval/rootfind/brent"
	"github.com/dkoval/rootfind/newton"
	"github.com/dkoval/rootfind/newtonsys"
	"github.com/dkoval/rootfind/secant"
)

// Solve routes a scalar root-finding problem to the chosen method.
//
// Required parameters per method:
//
//	Bisection – WithBracket(a, b)
//	Secant    – WithSeeds(x0, x1)
//	Newton    – WithSeed(x0) and WithDerivative(df)
//	Brent     – WithBracket(a, b)
//
// A missing parameter fails with ErrMissingParam naming the method and
// the parameter; an unrecognized Method value fails with
// ErrUnknownMethod. Both are raised before any evaluation of f.
// Tolerance and iteration cap (WithTol, WithMaxIter) are forwarded to
// the underlying method; its remaining knobs keep their own defaults.
func Solve(method Method, f Func, opts ...Option) (Result, error) {
	// 1) Build Options from defaults plus overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) The function itself is required by every method.
	if f == nil {
		return Result{}, fmt.Errorf("%w: %s requires f", ErrMissingParam, method)
	}

	// 3) Validate and dispatch.
	switch method {
	case Bisection:
		if !cfg.HasBracket {
			return Result{}, fmt.Errorf("%w: bisection requires a bracket (a, b)", ErrMissingParam)
		}
		res, err := bisection.Find(bisection.Func(f), cfg.A, cfg.B,
			bisection.WithTol(cfg.Tol), bisection.WithMaxIter(cfg.MaxIter))
		if err != nil {
			return Result{}, err
		}
		return Result{
			Root:       res.Root,
			Iterations: res.Iterations,
			Converged:  res.Converged,
			History:    res.History,
			AFinal:     res.AFinal,
			BFinal:     res.BFinal,
		}, nil

	case Secant:
		if !cfg.HasX0 || !cfg.HasX1 {
			return Result{}, fmt.Errorf("%w: secant requires two seeds (x0, x1)", ErrMissingParam)
		}
		res, err := secant.Find(secant.Func(f), cfg.X0, cfg.X1,
			secant.WithTol(cfg.Tol), secant.WithMaxIter(cfg.MaxIter))
		if err != nil {
			return Result{}, err
		}
		return Result{
			Root:       res.Root,
			Iterations: res.Iterations,
			Converged:  res.Converged,
			History:    res.History,
		}, nil

	case Newton:
		if cfg.Df == nil || !cfg.HasX0 {
			return Result{}, fmt.Errorf("%w: newton requires df and x0", ErrMissingParam)
		}
		res, err := newton.Find(newton.Func(f), newton.Func(cfg.Df), cfg.X0,
			newton.WithTol(cfg.Tol), newton.WithMaxIter(cfg.MaxIter))
		if err != nil {
			return Result{}, err
		}
		return Result{
			Root:       res.Root,
			Iterations: res.Iterations,
			Converged:  res.Converged,
			History:    res.History,
		}, nil

	case Brent:
		if !cfg.HasBracket {
			return Result{}, fmt.Errorf("%w: brent requires a bracket (a, b)", ErrMissingParam)
		}
		res, err := brent.Find(brent.Func(f), cfg.A, cfg.B,
			brent.WithTol(cfg.Tol), brent.WithMaxIter(cfg.MaxIter))
		if err != nil {
			return Result{}, err
		}
		return Result{
			Root:       res.Root,
			Iterations: res.Iterations,
			Converged:  res.Converged,
			History:    res.History,
			AFinal:     res.AFinal,
			BFinal:     res.BFinal,
		}, nil

	default:
		return Result{}, fmt.Errorf("%w: %s (%d); choose Bisection, Secant, Newton or Brent", ErrUnknownMethod, method, int(method))
	}
}

// SolveSystem routes a vector root-finding problem to the chosen
// method. Only Newton is recognized today; options are forwarded
// untouched to newtonsys.Solve.
func SolveSystem(method Method, F newtonsys.VectorFunc, x0 []float64, opts ...newtonsys.Option) (newtonsys.Result, error) {
	switch method {
	case Newton:
		return newtonsys.Solve(F, x0, opts...)
	default:
		return newtonsys.Result{}, fmt.Errorf("%w: %s (%d); only Newton solves systems", ErrUnknownMethod, method, int(method))
	}
}
