// Package solver is a thin dispatch façade over the scalar
// root-finding methods, for callers who choose the algorithm at run
// time.
//
// The method is a typed enum (Bisection, Secant, Newton, Brent) rather
// than a string, so an exhaustive switch covers every case at compile
// time. Solve validates that the parameters each method needs were
// actually supplied (a bracket for the bracketing methods, seeds for
// Newton and secant, a derivative for Newton) and fails
// with ErrMissingParam naming the method and the missing parameter
// before any function evaluation.
//
// Results are normalized into a single Result shape; AFinal/BFinal are
// meaningful only for the bracketing methods.
//
// SolveSystem is the analog for vector systems and currently
// recognizes only Newton, forwarding to the newtonsys package.
//
// Errors (sentinel):
//
//	– ErrMissingParam  if a required parameter for the chosen method is absent.
//	– ErrUnknownMethod if the method value is not one of the recognized constants.
//
// Example usage:
//
//	f := func(x float64) float64 { return x*x - 2 }
//	res, err := solver.Solve(solver.Bisection, f, solver.WithBracket(1, 2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("root=%.8f\n", res.Root)
package solver
