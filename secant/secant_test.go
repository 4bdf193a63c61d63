package secant_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoval/rootfind/secant"
)

// fSqrt2 has a simple root at sqrt(2).
func fSqrt2(x float64) float64 { return x*x - 2 }

// TestFind_ConvergesToSqrt2 verifies the basic contract from the
// canonical seeds (1, 2).
func TestFind_ConvergesToSqrt2(t *testing.T) {
	res, err := secant.Find(fSqrt2, 1, 2)
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.InDelta(t, math.Sqrt2, res.Root, 1e-7, "root must approximate sqrt(2)")
	assert.Less(t, res.Iterations, 50, "superlinear convergence needs far fewer than MaxIter steps")
}

// TestFind_HistorySeeded verifies that the history carries both seeds
// followed by one iterate per completed step.
func TestFind_HistorySeeded(t *testing.T) {
	res, err := secant.Find(fSqrt2, 1, 2)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(res.History), 2)
	assert.Equal(t, 1.0, res.History[0])
	assert.Equal(t, 2.0, res.History[1])
	assert.Len(t, res.History, res.Iterations+2, "len(History) must equal Iterations+2")
}

// TestFind_FlatSecantFailsGracefully ensures a vanishing denominator
// produces a soft failure, not an error, and does not count the
// aborted step.
func TestFind_FlatSecantFailsGracefully(t *testing.T) {
	flat := func(float64) float64 { return 1 } // f(x1) - f(x0) == 0

	res, err := secant.Find(flat, 0, 1)
	require.NoError(t, err, "a degenerate slope must not raise")

	assert.False(t, res.Converged)
	assert.Zero(t, res.Iterations, "the aborted step must not be counted")
	assert.Equal(t, 1.0, res.Root, "the last iterate is returned")
	assert.Equal(t, []float64{0, 1}, res.History)
}

// TestFind_MaxIterExhausted verifies soft non-convergence when the
// budget is too small for the requested tolerance.
func TestFind_MaxIterExhausted(t *testing.T) {
	res, err := secant.Find(fSqrt2, 1, 2, secant.WithMaxIter(1))
	require.NoError(t, err)

	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.Len(t, res.History, 3)
}

// TestFind_Idempotent verifies the pure-function property.
func TestFind_Idempotent(t *testing.T) {
	first, err := secant.Find(fSqrt2, 1, 2)
	require.NoError(t, err)
	second, err := secant.Find(fSqrt2, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestOptions_PanicOnInvalid ensures option constructors reject
// structurally invalid configuration early.
func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.PanicsWithValue(t, secant.ErrBadTol.Error(), func() {
		_, _ = secant.Find(fSqrt2, 1, 2, secant.WithTol(-1))
	})
	assert.PanicsWithValue(t, secant.ErrBadMaxIter.Error(), func() {
		_, _ = secant.Find(fSqrt2, 1, 2, secant.WithMaxIter(0))
	})
	assert.PanicsWithValue(t, secant.ErrBadMinDenom.Error(), func() {
		_, _ = secant.Find(fSqrt2, 1, 2, secant.WithMinDenom(0))
	})
}
