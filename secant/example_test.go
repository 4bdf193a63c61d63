package secant_test

import (
	"fmt"

	"github.com/dkoval/rootfind/secant"
)

// ExampleFind demonstrates the derivative-free secant method on
// x² − 2 from the seeds (1, 2).
func ExampleFind() {
	f := func(x float64) float64 { return x*x - 2 }

	res, err := secant.Find(f, 1, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("root=%.8f converged=%v\n", res.Root, res.Converged)
	// Output:
	// root=1.41421356 converged=true
}
