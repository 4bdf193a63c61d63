package newtonsys_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/dkoval/rootfind/jacobian"
	"github.com/dkoval/rootfind/newtonsys"
)

// benchmarkCircle is a helper that solves the circle/line intersection
// system from a fixed seed with the supplied options. It resets the
// timer before the loop and fails on unexpected errors.
func benchmarkCircle(b *testing.B, opts ...newtonsys.Option) {
	F := func(v []float64) []float64 {
		x, y := v[0], v[1]
		return []float64{x*x + y*y - 1, x - y}
	}
	seed := []float64{0.8, 0.6}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		res, err := newtonsys.Solve(F, seed, opts...)
		if err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
		if !res.Converged {
			b.Fatalf("Solve did not converge: %s", res.Message)
		}
	}
}

// BenchmarkSolve_AnalyticJacobian benchmarks the solver with an exact
// Jacobian, the cheapest configuration per iteration.
func BenchmarkSolve_AnalyticJacobian(b *testing.B) {
	J := func(v []float64) *mat.Dense {
		x, y := v[0], v[1]
		return mat.NewDense(2, 2, []float64{2 * x, 2 * y, 1, -1})
	}
	benchmarkCircle(b, newtonsys.WithJacobian(J))
}

// BenchmarkSolve_CentralDifferences benchmarks the solver with the
// default central-difference Jacobian (2n extra evaluations per step).
func BenchmarkSolve_CentralDifferences(b *testing.B) {
	benchmarkCircle(b)
}

// BenchmarkSolve_ForwardDifferences benchmarks the forward-difference
// Jacobian, which reuses the current residual as its baseline.
func BenchmarkSolve_ForwardDifferences(b *testing.B) {
	benchmarkCircle(b, newtonsys.WithFDMethod(jacobian.Forward))
}

// BenchmarkSolve_NoLineSearch benchmarks undamped Newton steps on the
// same well-behaved system.
func BenchmarkSolve_NoLineSearch(b *testing.B) {
	benchmarkCircle(b, newtonsys.WithLineSearch(false))
}
