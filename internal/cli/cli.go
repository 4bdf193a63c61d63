// Package cli implements the rootfind command-line interface.
//
// The CLI is a demonstration surface over the library: it solves a
// built-in problem with any of the scalar methods, benchmarks all of
// them side by side, and renders a semilog convergence plot. It is
// built with cobra and logs through the charmbracelet/log library.
//
// # Commands
//
//   - solve: run one method on a built-in problem and report the result
//   - bench: run every scalar method on a problem and print a table
//   - plot:  render absolute error per iteration for Newton vs bisection
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// ctxKey is the private context key type for the logger.
type ctxKey struct{}

// newLogger creates a logger with timestamp formatting that writes to
// w and filters messages at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// withLogger attaches l to the context.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext retrieves the logger attached by withLogger,
// falling back to the package default when none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// Execute runs the rootfind CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "rootfind",
		Short:        "rootfind demonstrates classical root-finding methods",
		Long:         `rootfind solves built-in scalar problems with bisection, secant, Newton or Brent, benchmarks the methods against each other, and plots their convergence behavior.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newPlotCmd())

	return root.ExecuteContext(ctx)
}
