package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkoval/rootfind/bisection"
	"github.com/dkoval/rootfind/brent"
	"github.com/dkoval/rootfind/newton"
	"github.com/dkoval/rootfind/secant"
)

// newBenchCmd builds the bench command: run every scalar method on a
// built-in problem and print iterations, final error and elapsed time.
func newBenchCmd() *cobra.Command {
	var problemName string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare all scalar methods on one problem",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			prob, err := lookupProblem(problemName)
			if err != nil {
				return err
			}
			logger.Debug("benchmarking", "problem", prob.desc)

			type row struct {
				name       string
				iterations int
				root       float64
				elapsed    time.Duration
			}
			rows := make([]row, 0, 4)

			start := time.Now()
			nres, err := newton.Find(prob.f, prob.df, prob.newtonX)
			if err != nil {
				return err
			}
			rows = append(rows, row{"Newton", nres.Iterations, nres.Root, time.Since(start)})

			start = time.Now()
			sres, err := secant.Find(prob.f, prob.x0, prob.x1)
			if err != nil {
				return err
			}
			rows = append(rows, row{"Secant", sres.Iterations, sres.Root, time.Since(start)})

			start = time.Now()
			bires, err := bisection.Find(prob.f, prob.a, prob.b)
			if err != nil {
				return err
			}
			rows = append(rows, row{"Bisection", bires.Iterations, bires.Root, time.Since(start)})

			start = time.Now()
			bres, err := brent.Find(prob.f, prob.a, prob.b)
			if err != nil {
				return err
			}
			rows = append(rows, row{"Brent", bres.Iterations, bres.Root, time.Since(start)})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "problem: %s\n\n", prob.desc)
			fmt.Fprintf(out, "%-11s %-12s %-16s %s\n", "Method", "Iterations", "Final Error", "Time")
			fmt.Fprintln(out, "----------------------------------------------------")
			for _, r := range rows {
				fmt.Fprintf(out, "%-11s %-12d %-16.2e %v\n", r.name, r.iterations, math.Abs(r.root-prob.root), r.elapsed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&problemName, "problem", "p", "sqrt2", "built-in problem: sqrt2, cosx or cubic")

	return cmd
}
