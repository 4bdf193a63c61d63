package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/dkoval/rootfind/bisection"
	"github.com/dkoval/rootfind/newton"
)

// errSeries converts an iterate history into plottable (iteration,
// |x−root|) points, dropping exact hits that a log scale cannot show.
func errSeries(history []float64, root float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(history))
	for i, x := range history {
		e := math.Abs(x - root)
		if e <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(i), Y: e})
	}
	return pts
}

// newPlotCmd builds the plot command: a semilog-y comparison of the
// absolute error per iteration for Newton vs bisection.
func newPlotCmd() *cobra.Command {
	var (
		problemName string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render a convergence comparison plot (Newton vs bisection)",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			prob, err := lookupProblem(problemName)
			if err != nil {
				return err
			}

			nres, err := newton.Find(prob.f, prob.df, prob.newtonX)
			if err != nil {
				return err
			}
			bres, err := bisection.Find(prob.f, prob.a, prob.b)
			if err != nil {
				return err
			}
			logger.Debug("histories", "newton", len(nres.History), "bisection", len(bres.History))

			p := plot.New()
			p.Title.Text = "Convergence comparison"
			p.X.Label.Text = "Iteration"
			p.Y.Label.Text = fmt.Sprintf("Absolute error |x - root|, %s", prob.desc)
			p.Y.Scale = plot.LogScale{}
			p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
			p.Add(plotter.NewGrid())

			nLine, nPoints, err := plotter.NewLinePoints(errSeries(nres.History, prob.root))
			if err != nil {
				return err
			}
			bLine, bPoints, err := plotter.NewLinePoints(errSeries(bres.History, prob.root))
			if err != nil {
				return err
			}
			bLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

			p.Add(nLine, nPoints, bLine, bPoints)
			p.Legend.Add("Newton", nLine, nPoints)
			p.Legend.Add("Bisection", bLine, bPoints)
			p.Legend.Top = true

			if err := p.Save(6*vg.Inch, 4*vg.Inch, output); err != nil {
				return err
			}
			logger.Info("plot written", "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&problemName, "problem", "p", "sqrt2", "built-in problem: sqrt2, cosx or cubic")
	cmd.Flags().StringVarP(&output, "output", "o", "convergence.png", "output image path (.png, .svg, .pdf)")

	return cmd
}
