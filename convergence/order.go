package convergence

import (
	"math"
	"sort"
)

// EstimateOrder estimates the empirical convergence order from a
// sequence of absolute errors using the classical three-point formula,
// returning the median over all consecutive triples.
//
// Returns:
//
//   - p:   the estimated order (≈1 linear, ≈1.618 secant, ≈2 quadratic).
//   - err: ErrTooFewPoints if fewer than three errors exceed the floor,
//     ErrNoEstimate if no triple yields a finite value.
//
// The input slice is not mutated.
func EstimateOrder(errs []float64, opts ...Option) (float64, error) {
	// 1) Build Options from defaults plus overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Discard exact hits and floating-point noise.
	e := make([]float64, 0, len(errs))
	var v float64
	for _, v = range errs {
		if v > cfg.Eps {
			e = append(e, v)
		}
	}
	if len(e) < 3 {
		return 0, ErrTooFewPoints
	}

	// 3) One estimate per consecutive triple.
	pVals := make([]float64, 0, len(e)-2)
	for i := 2; i < len(e); i++ {
		eNm1, eN, eNp1 := e[i-2], e[i-1], e[i]

		denom := math.Log(eN / eNm1)
		if denom == 0 {
			continue
		}
		p := math.Log(eNp1/eN) / denom
		if !math.IsInf(p, 0) && !math.IsNaN(p) {
			pVals = append(pVals, p)
		}
	}
	if len(pVals) == 0 {
		return 0, ErrNoEstimate
	}

	// 4) Median, to damp pre-asymptotic outliers.
	sort.Float64s(pVals)

	return pVals[len(pVals)/2], nil
}
