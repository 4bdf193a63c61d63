package newtonsys

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/dkoval/rootfind/jacobian"
)

// Terminal-condition messages carried in Result.Message.
const (
	msgInitialGuess = "already converged at initial guess"
	msgStagnation   = "step size below TolX (stagnation or convergence)"
	msgConverged    = "converged: residual norm below TolF"
	msgMaxIter      = "max iterations reached without convergence"
)

// Solve finds x with F(x) = 0 for a square system by damped Newton
// iteration. See the package documentation for the full algorithm.
//
// Returns:
//
//   - Result: solution estimate with residual/step diagnostics and the
//     residual-norm history (seeded with the initial residual).
//   - err:    ErrEmptyGuess, ErrNonSquare or ErrBadJacobianShape for
//     malformed problems; all raised synchronously at validation or at
//     the structural shape check, never deferred.
//
// Singular or ill-conditioned Jacobians are recovered via an SVD
// least-squares step and never surface as errors. Non-convergence
// (stagnation, exhausted iterations) is reported softly through
// Result.Converged and Result.Message.
func Solve(F VectorFunc, x0 []float64, opts ...Option) (Result, error) {
	// 1) Build Options from defaults plus overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the initial vector.
	n := len(x0)
	if n == 0 {
		return Result{}, ErrEmptyGuess
	}
	x := make([]float64, n)
	copy(x, x0)

	// 3) Evaluate the initial residual and require a square system.
	fx := F(x)
	if len(fx) != n {
		return Result{}, fmt.Errorf("%w: len(F(x))=%d but len(x)=%d", ErrNonSquare, len(fx), n)
	}

	fnorm := floats.Norm(fx, 2)
	resHist := make([]float64, 0, cfg.MaxIter+1)
	resHist = append(resHist, fnorm)

	if fnorm <= cfg.TolF {
		return Result{
			Root:            x,
			Converged:       true,
			Iterations:      0,
			ResidualNorm:    fnorm,
			StepNorm:        0,
			ResidualHistory: resHist,
			Message:         msgInitialGuess,
		}, nil
	}

	lastStepNorm := math.Inf(1)
	rhs := mat.NewVecDense(n, nil)
	dx := make([]float64, n)

	for k := 1; k <= cfg.MaxIter; k++ {
		// 4) Jacobian at the current point, analytic or finite-difference.
		//    The current residual is reused as the FD baseline.
		var jm *mat.Dense
		if cfg.Jacobian == nil {
			var err error
			jm, err = jacobian.Estimate(jacobian.VectorFunc(F), x, fx,
				jacobian.WithMethod(cfg.FDMethod), jacobian.WithEps(cfg.FDEps))
			if err != nil {
				return Result{}, err
			}
		} else {
			jm = cfg.Jacobian(x)
		}
		if r, c := jm.Dims(); r != n || c != n {
			return Result{}, fmt.Errorf("%w: want %d×%d, got %d×%d", ErrBadJacobianShape, n, n, r, c)
		}

		// 5) Solve J·dx = −F(x); fall back to a minimum-norm
		//    least-squares step when the LU solve reports trouble.
		for i := 0; i < n; i++ {
			rhs.SetVec(i, -fx[i])
		}
		sol := new(mat.VecDense)
		if err := sol.SolveVec(jm, rhs); err != nil {
			sol = leastSquares(jm, rhs)
		}
		for i := 0; i < n; i++ {
			dx[i] = sol.AtVec(i)
		}

		stepNorm := floats.Norm(dx, 2)
		lastStepNorm = stepNorm

		// 6) Stagnation: a tiny step ends the run, converged only if the
		//    residual independently satisfies TolF. The rejected step is
		//    not counted.
		if stepNorm <= cfg.TolX {
			return Result{
				Root:            x,
				Converged:       fnorm <= cfg.TolF,
				Iterations:      k - 1,
				ResidualNorm:    fnorm,
				StepNorm:        stepNorm,
				ResidualHistory: resHist,
				Message:         msgStagnation,
			}, nil
		}

		// 7) Candidate step with optional Armijo backtracking on the
		//    squared residual norm.
		alpha := cfg.Alpha0
		xNew := make([]float64, n)
		floats.AddScaledTo(xNew, x, alpha, dx)
		fxNew := F(xNew)
		fnormNew := floats.Norm(fxNew, 2)

		if cfg.LineSearch {
			f2 := fnorm * fnorm
			target := (1 - cfg.C1*alpha) * f2
			for steps := 0; fnormNew*fnormNew > target && steps < cfg.LSMaxSteps; steps++ {
				alpha *= cfg.LSShrink
				floats.AddScaledTo(xNew, x, alpha, dx)
				fxNew = F(xNew)
				fnormNew = floats.Norm(fxNew, 2)
				target = (1 - cfg.C1*alpha) * f2
			}
		}

		// 8) Accept the candidate (even if the backtracking budget ran
		//    out) and record its residual norm.
		x, fx, fnorm = xNew, fxNew, fnormNew
		resHist = append(resHist, fnorm)

		if fnorm <= cfg.TolF {
			return Result{
				Root:            x,
				Converged:       true,
				Iterations:      k,
				ResidualNorm:    fnorm,
				StepNorm:        lastStepNorm,
				ResidualHistory: resHist,
				Message:         msgConverged,
			}, nil
		}
	}

	// 9) MaxIter exhausted: soft non-convergence with the best point.
	if math.IsInf(lastStepNorm, 0) {
		lastStepNorm = math.NaN()
	}
	return Result{
		Root:            x,
		Converged:       false,
		Iterations:      cfg.MaxIter,
		ResidualNorm:    fnorm,
		StepNorm:        lastStepNorm,
		ResidualHistory: resHist,
		Message:         msgMaxIter,
	}, nil
}

// leastSquares computes the minimum-norm least-squares solution of
// a·dx = b via a thin SVD, using the same rank cutoff as LAPACK-style
// solvers: singular values below eps·max(m,n)·σ_max are treated as
// zero. A rank-zero (or unfactorizable) matrix yields the zero step,
// which the stagnation check then reports.
func leastSquares(a *mat.Dense, b *mat.VecDense) *mat.VecDense {
	m, n := a.Dims()

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return mat.NewVecDense(n, nil)
	}

	values := svd.Values(nil)
	dim := m
	if n > dim {
		dim = n
	}
	eps := math.Nextafter(1, 2) - 1
	cutoff := eps * float64(dim) * values[0]

	rank := 0
	for _, v := range values {
		if v > cutoff {
			rank++
		}
	}
	if rank == 0 {
		return mat.NewVecDense(n, nil)
	}

	var dx mat.VecDense
	svd.SolveVecTo(&dx, b, rank)

	return &dx
}
