package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/dkoval/rootfind/solver"
)

// methodFromFlag maps the --method flag to the façade enum.
func methodFromFlag(name string) (solver.Method, error) {
	switch name {
	case "bisection":
		return solver.Bisection, nil
	case "secant":
		return solver.Secant, nil
	case "newton":
		return solver.Newton, nil
	case "brent":
		return solver.Brent, nil
	default:
		return 0, fmt.Errorf("unknown method %q; choose bisection, secant, newton or brent", name)
	}
}

// newSolveCmd builds the solve command: run one method on a built-in
// problem and report root, iterations and convergence.
func newSolveCmd() *cobra.Command {
	var (
		methodName  string
		problemName string
		tol         float64
		maxIter     int
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a built-in problem with one method",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			method, err := methodFromFlag(methodName)
			if err != nil {
				return err
			}
			prob, err := lookupProblem(problemName)
			if err != nil {
				return err
			}

			logger.Debug("solving", "problem", prob.desc, "method", method.String(), "tol", tol, "max-iter", maxIter)

			opts := []solver.Option{solver.WithTol(tol), solver.WithMaxIter(maxIter)}
			switch method {
			case solver.Bisection, solver.Brent:
				opts = append(opts, solver.WithBracket(prob.a, prob.b))
			case solver.Secant:
				opts = append(opts, solver.WithSeeds(prob.x0, prob.x1))
			case solver.Newton:
				opts = append(opts, solver.WithSeed(prob.newtonX), solver.WithDerivative(prob.df))
			}

			res, err := solver.Solve(method, prob.f, opts...)
			if err != nil {
				return err
			}

			logger.Info("done", "iterations", res.Iterations, "converged", res.Converged)
			fmt.Fprintf(cmd.OutOrStdout(), "problem:    %s\n", prob.desc)
			fmt.Fprintf(cmd.OutOrStdout(), "method:     %s\n", method)
			fmt.Fprintf(cmd.OutOrStdout(), "root:       %.12f\n", res.Root)
			fmt.Fprintf(cmd.OutOrStdout(), "error:      %.3e\n", math.Abs(res.Root-prob.root))
			fmt.Fprintf(cmd.OutOrStdout(), "iterations: %d\n", res.Iterations)
			fmt.Fprintf(cmd.OutOrStdout(), "converged:  %v\n", res.Converged)
			return nil
		},
	}

	cmd.Flags().StringVarP(&methodName, "method", "m", "brent", "method: bisection, secant, newton or brent")
	cmd.Flags().StringVarP(&problemName, "problem", "p", "sqrt2", "built-in problem: sqrt2, cosx or cubic")
	cmd.Flags().Float64Var(&tol, "tol", 1e-8, "stopping tolerance")
	cmd.Flags().IntVar(&maxIter, "max-iter", 50, "iteration cap")

	return cmd
}
