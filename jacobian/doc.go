// Package jacobian estimates Jacobian matrices of vector functions by
// finite differences.
//
// For F: R^n → R^m the Jacobian J has entries J_ij = ∂F_i/∂x_j.
// Estimate perturbs one coordinate at a time with a magnitude-scaled
// step
//
//	h_j = Eps · (1 + |x_j|)
//
// (the scaling avoids cancellation error for large-magnitude
// coordinates) and differences the function values:
//
//	Forward:  column j = (F(x + h_j·e_j) − F(x)) / h_j
//	Central:  column j = (F(x + h_j·e_j) − F(x − h_j·e_j)) / (2·h_j)
//
// Cost and accuracy:
//
//	– Forward: n extra evaluations of F, first-order accurate O(h).
//	– Central: 2n extra evaluations, second-order accurate O(h²).
//	  Central is the default and should be preferred unless F is
//	  prohibitively expensive.
//
// The result is a gonum *mat.Dense so it can feed a linear solve
// directly (see the newtonsys package).
//
// Errors (sentinel):
//
//	– ErrUnknownMethod if the difference scheme is not Forward or Central.
//
// Example usage:
//
//	F := func(v []float64) []float64 {
//	    return []float64{v[0]*v[0] + v[1]*v[1] - 1, v[0] - v[1]}
//	}
//	J, err := jacobian.Estimate(F, []float64{0.8, 0.6}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("J ≈ %v\n", mat.Formatted(J))
package jacobian
