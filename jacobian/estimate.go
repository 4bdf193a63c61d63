package jacobian

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Estimate approximates the Jacobian of F at x by finite differences.
//
// fx may carry a precomputed F(x) to save one evaluation in Forward
// mode; pass nil to have Estimate evaluate it. Central mode never uses
// fx beyond sizing the result.
//
// Returns an m×n *mat.Dense, where m = len(F(x)) and n = len(x), with
// column j holding the estimated partial derivatives of F with respect
// to coordinate j, or ErrUnknownMethod for an unrecognized scheme.
//
// x is never mutated; each perturbation works on a private copy.
func Estimate(F VectorFunc, x, fx []float64, opts ...Option) (*mat.Dense, error) {
	// 1) Build Options from defaults plus overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the scheme before spending any evaluations.
	if cfg.Method != Forward && cfg.Method != Central {
		return nil, ErrUnknownMethod
	}

	// 3) Baseline evaluation, reused across all Forward columns.
	fx0 := fx
	if fx0 == nil {
		fx0 = F(x)
	}

	n := len(x)
	m := len(fx0)
	jac := mat.NewDense(m, n, nil)

	// 4) Perturb one coordinate at a time with a magnitude-scaled step.
	pt := make([]float64, n)
	for j := 0; j < n; j++ {
		h := cfg.Eps * (1 + math.Abs(x[j]))

		switch cfg.Method {
		case Forward:
			copy(pt, x)
			pt[j] += h
			f1 := F(pt)
			for i := 0; i < m; i++ {
				jac.Set(i, j, (f1[i]-fx0[i])/h)
			}
		case Central:
			copy(pt, x)
			pt[j] += h
			fPlus := F(pt)
			copy(pt, x)
			pt[j] -= h
			fMinus := F(pt)
			for i := 0; i < m; i++ {
				jac.Set(i, j, (fPlus[i]-fMinus[i])/(2*h))
			}
		}
	}

	return jac, nil
}
