package cli

import (
	"fmt"
	"math"
	"sort"
)

// problem is a built-in demo equation f(x) = 0 with everything the
// commands need: a derivative for Newton, a bracket for the bracketing
// methods, seeds for secant, and the known root for error reporting.
type problem struct {
	desc    string
	f       func(float64) float64
	df      func(float64) float64
	root    float64
	a, b    float64
	x0, x1  float64
	newtonX float64
}

// problems holds the built-in demo equations, keyed by flag value.
var problems = map[string]problem{
	"sqrt2": {
		desc:    "x^2 - 2 = 0 (root sqrt(2))",
		f:       func(x float64) float64 { return x*x - 2 },
		df:      func(x float64) float64 { return 2 * x },
		root:    math.Sqrt2,
		a:       1, b: 2,
		x0:      1, x1: 2,
		newtonX: 1.5,
	},
	"cosx": {
		desc:    "cos(x) - x = 0 (Dottie number)",
		f:       func(x float64) float64 { return math.Cos(x) - x },
		df:      func(x float64) float64 { return -math.Sin(x) - 1 },
		root:    0.7390851332151607,
		a:       0, b: 1,
		x0:      0, x1: 1,
		newtonX: 0.5,
	},
	"cubic": {
		desc:    "x^3 - x - 2 = 0",
		f:       func(x float64) float64 { return x*x*x - x - 2 },
		df:      func(x float64) float64 { return 3*x*x - 1 },
		root:    1.5213797068045676,
		a:       1, b: 2,
		x0:      1, x1: 2,
		newtonX: 1.5,
	},
}

// lookupProblem resolves a --problem flag value, listing the valid
// names in the error message.
func lookupProblem(name string) (problem, error) {
	p, ok := problems[name]
	if !ok {
		names := make([]string, 0, len(problems))
		for k := range problems {
			names = append(names, k)
		}
		sort.Strings(names)
		return problem{}, fmt.Errorf("unknown problem %q; choose one of %v", name, names)
	}
	return p, nil
}
