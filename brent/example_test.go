package brent_test

import (
	"fmt"

	"github.com/dkoval/rootfind/brent"
)

// ExampleFind demonstrates the hybrid method on the classic x² − 2.
//
// Brent keeps the bisection bracket guarantee while interpolating
// toward the root, so it converges in far fewer iterations than plain
// halving would need.
func ExampleFind() {
	f := func(x float64) float64 { return x*x - 2 }

	res, err := brent.Find(f, 1, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("root=%.8f converged=%v\n", res.Root, res.Converged)
	// Output:
	// root=1.41421356 converged=true
}
