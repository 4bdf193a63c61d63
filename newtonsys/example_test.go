package newtonsys_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/dkoval/rootfind/newtonsys"
)

// ExampleSolve demonstrates intersecting the unit circle with the line
// x = y.
//
// Scenario:
//
//	F(x,y) = [x² + y² − 1, x − y] vanishes at (±1/√2, ±1/√2); from the
//	seed (0.8, 0.6) Newton converges to the positive intersection in a
//	handful of iterations.
func ExampleSolve() {
	F := func(v []float64) []float64 {
		x, y := v[0], v[1]
		return []float64{x*x + y*y - 1, x - y}
	}
	J := func(v []float64) *mat.Dense {
		x, y := v[0], v[1]
		return mat.NewDense(2, 2, []float64{2 * x, 2 * y, 1, -1})
	}

	res, err := newtonsys.Solve(F, []float64{0.8, 0.6}, newtonsys.WithJacobian(J))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x=%.6f y=%.6f converged=%v\n", res.Root[0], res.Root[1], res.Converged)
	// Output:
	// x=0.707107 y=0.707107 converged=true
}

// ExampleSolve_finiteDifference solves the same system without an
// analytic Jacobian: the solver estimates one by central differences
// each iteration.
func ExampleSolve_finiteDifference() {
	F := func(v []float64) []float64 {
		x, y := v[0], v[1]
		return []float64{x*x + y*y - 1, x - y}
	}

	res, err := newtonsys.Solve(F, []float64{0.8, 0.6}, newtonsys.WithTolF(1e-10))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x=%.6f y=%.6f converged=%v\n", res.Root[0], res.Root[1], res.Converged)
	// Output:
	// x=0.707107 y=0.707107 converged=true
}
