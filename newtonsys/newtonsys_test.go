package newtonsys_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/dkoval/rootfind/newtonsys"
)

// circleLine is F(x,y) = [x²+y²−1, x−y]; its roots are
// (±1/√2, ±1/√2) on the unit circle along the diagonal.
func circleLine(v []float64) []float64 {
	x, y := v[0], v[1]
	return []float64{x*x + y*y - 1, x - y}
}

// circleLineJac is the analytic Jacobian of circleLine.
func circleLineJac(v []float64) *mat.Dense {
	x, y := v[0], v[1]
	return mat.NewDense(2, 2, []float64{
		2 * x, 2 * y,
		1, -1,
	})
}

// residualNorm evaluates ‖F(x)‖₂ for assertions.
func residualNorm(F newtonsys.VectorFunc, x []float64) float64 {
	return floats.Norm(F(x), 2)
}

// TestSolve_AnalyticJacobian verifies the headline property: from
// (0.8, 0.6) the solver reaches x≈y≈0.70710678 with ‖F‖ < 1e-10.
func TestSolve_AnalyticJacobian(t *testing.T) {
	res, err := newtonsys.Solve(circleLine, []float64{0.8, 0.6},
		newtonsys.WithJacobian(circleLineJac), newtonsys.WithTolF(1e-12))
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Less(t, residualNorm(circleLine, res.Root), 1e-10)
	assert.InDelta(t, res.Root[0], res.Root[1], 1e-9, "the root lies on x=y")
	assert.InDelta(t, 1/math.Sqrt2, res.Root[0], 1e-9)
}

// TestSolve_FiniteDifferenceJacobian verifies convergence without an
// analytic Jacobian; finite differences are a bit looser.
func TestSolve_FiniteDifferenceJacobian(t *testing.T) {
	res, err := newtonsys.Solve(circleLine, []float64{0.8, 0.6},
		newtonsys.WithTolF(1e-10), newtonsys.WithMaxIter(80))
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Less(t, residualNorm(circleLine, res.Root), 1e-8)
}

// TestSolve_ResidualHistory verifies the diagnostic shape: seeded with
// the initial residual, one entry per accepted step, terminal values
// mirrored in ResidualNorm.
func TestSolve_ResidualHistory(t *testing.T) {
	res, err := newtonsys.Solve(circleLine, []float64{0.8, 0.6},
		newtonsys.WithJacobian(circleLineJac))
	require.NoError(t, err)
	require.True(t, res.Converged)

	require.NotEmpty(t, res.ResidualHistory)
	assert.Len(t, res.ResidualHistory, res.Iterations+1)
	assert.InDelta(t, residualNorm(circleLine, []float64{0.8, 0.6}), res.ResidualHistory[0], 1e-15,
		"history must be seeded with the initial residual norm")
	assert.Equal(t, res.ResidualNorm, res.ResidualHistory[len(res.ResidualHistory)-1])
	assert.Greater(t, res.StepNorm, 0.0)
	assert.NotEmpty(t, res.Message)
}

// TestSolve_NonSquareSystem ensures F: R² → R¹ is rejected at the
// structural check, before any iteration.
func TestSolve_NonSquareSystem(t *testing.T) {
	F := func(v []float64) []float64 { return []float64{v[0] + v[1]} }

	_, err := newtonsys.Solve(F, []float64{1, 2})
	assert.ErrorIs(t, err, newtonsys.ErrNonSquare)
}

// TestSolve_EmptyGuess ensures an empty initial vector is rejected.
func TestSolve_EmptyGuess(t *testing.T) {
	_, err := newtonsys.Solve(circleLine, nil)
	assert.ErrorIs(t, err, newtonsys.ErrEmptyGuess)
}

// TestSolve_BadJacobianShape ensures a misshapen analytic Jacobian is
// rejected during iteration.
func TestSolve_BadJacobianShape(t *testing.T) {
	badJac := func(v []float64) *mat.Dense { return mat.NewDense(1, 1, []float64{1}) }

	_, err := newtonsys.Solve(circleLine, []float64{0.8, 0.6}, newtonsys.WithJacobian(badJac))
	assert.ErrorIs(t, err, newtonsys.ErrBadJacobianShape)
}

// TestSolve_AlreadyConvergedAtGuess verifies the zero-iteration early
// exit when the initial residual already satisfies TolF.
func TestSolve_AlreadyConvergedAtGuess(t *testing.T) {
	identity := func(v []float64) []float64 { return []float64{v[0]} }

	res, err := newtonsys.Solve(identity, []float64{0})
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Zero(t, res.Iterations)
	assert.Zero(t, res.StepNorm)
	assert.Equal(t, []float64{0.0}, res.ResidualHistory)
}

// TestSolve_SingularJacobianFallsBackToLeastSquares exercises the
// deliberate robustness path: a rank-1 Jacobian must not error, and
// the minimum-norm step still solves this consistent system exactly.
func TestSolve_SingularJacobianFallsBackToLeastSquares(t *testing.T) {
	// F(x,y) = [x+y−1, 2x+2y−2]: a line of roots, Jacobian always singular.
	F := func(v []float64) []float64 {
		x, y := v[0], v[1]
		return []float64{x + y - 1, 2*x + 2*y - 2}
	}
	J := func(v []float64) *mat.Dense {
		return mat.NewDense(2, 2, []float64{1, 1, 2, 2})
	}

	res, err := newtonsys.Solve(F, []float64{0, 0}, newtonsys.WithJacobian(J))
	require.NoError(t, err, "a singular Jacobian is recovered, not surfaced")

	assert.True(t, res.Converged)
	assert.Less(t, residualNorm(F, res.Root), 1e-10)
	assert.InDelta(t, 0.5, res.Root[0], 1e-9, "the minimum-norm step lands on (1/2, 1/2)")
	assert.InDelta(t, 0.5, res.Root[1], 1e-9)
}

// TestSolve_LineSearchGlobalizes verifies the Armijo backtracking on a
// problem where the undamped full step famously diverges: f(x) =
// atan(5x) from x0 = 1.
func TestSolve_LineSearchGlobalizes(t *testing.T) {
	F := func(v []float64) []float64 { return []float64{math.Atan(5 * v[0])} }
	J := func(v []float64) *mat.Dense {
		return mat.NewDense(1, 1, []float64{5 / (1 + 25*v[0]*v[0])})
	}

	// Undamped Newton overshoots and runs away.
	bare, err := newtonsys.Solve(F, []float64{1},
		newtonsys.WithJacobian(J), newtonsys.WithLineSearch(false))
	require.NoError(t, err)
	assert.False(t, bare.Converged, "the full step diverges on atan")

	// Backtracking tames the step and converges to 0.
	damped, err := newtonsys.Solve(F, []float64{1},
		newtonsys.WithJacobian(J), newtonsys.WithMaxIter(100))
	require.NoError(t, err)
	assert.True(t, damped.Converged)
	assert.InDelta(t, 0.0, damped.Root[0], 1e-9)
}

// TestSolve_StagnationReportsHonestly verifies rule 3 of the iteration:
// a tiny step alone must not claim convergence when the residual is
// still large.
func TestSolve_StagnationReportsHonestly(t *testing.T) {
	// F(x) = x² + 1 has no real root; its minimum-residual point is 0
	// where the Newton step keeps shrinking without the residual falling.
	F := func(v []float64) []float64 { return []float64{v[0]*v[0] + 1} }
	J := func(v []float64) *mat.Dense {
		return mat.NewDense(1, 1, []float64{2 * v[0]})
	}

	res, err := newtonsys.Solve(F, []float64{1}, newtonsys.WithJacobian(J),
		newtonsys.WithMaxIter(500), newtonsys.WithTolX(1e-3))
	require.NoError(t, err)

	assert.False(t, res.Converged, "a small step with a large residual is not convergence")
	assert.GreaterOrEqual(t, res.ResidualNorm, 1.0)
}

// TestSolve_Idempotent verifies the pure-function property.
func TestSolve_Idempotent(t *testing.T) {
	first, err := newtonsys.Solve(circleLine, []float64{0.8, 0.6})
	require.NoError(t, err)
	second, err := newtonsys.Solve(circleLine, []float64{0.8, 0.6})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestOptions_PanicOnInvalid ensures option constructors reject
// structurally invalid configuration early.
func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.PanicsWithValue(t, newtonsys.ErrBadTolF.Error(), func() {
		_, _ = newtonsys.Solve(circleLine, []float64{1, 1}, newtonsys.WithTolF(0))
	})
	assert.PanicsWithValue(t, newtonsys.ErrBadC1.Error(), func() {
		_, _ = newtonsys.Solve(circleLine, []float64{1, 1}, newtonsys.WithC1(1))
	})
	assert.PanicsWithValue(t, newtonsys.ErrBadShrink.Error(), func() {
		_, _ = newtonsys.Solve(circleLine, []float64{1, 1}, newtonsys.WithLSShrink(1))
	})
	assert.PanicsWithValue(t, newtonsys.ErrBadLSMaxSteps.Error(), func() {
		_, _ = newtonsys.Solve(circleLine, []float64{1, 1}, newtonsys.WithLSMaxSteps(-1))
	})
}
