package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

var _ Solver = NelderMead{}

// NelderMead minimizes an arbitrary objective over the interval by running
// gonum's Nelder-Mead on an unconstrained variable t mapped into [lo,hi]
// through a sine transform. Slower than ClosedForm but makes no assumption
// about the objective's shape.
type NelderMead struct{}

func (NelderMead) Minimize(f Objective, lo, hi float64) (float64, error) {
	if !(lo < hi) {
		return 0, fmt.Errorf("lo=%v hi=%v: %w", lo, hi, ErrBounds)
	}
	project := func(t float64) float64 {
		return lo + (hi-lo)*(math.Sin(t)+1)/2
	}
	problem := optimize.Problem{
		Func: func(x []float64) float64 { return f(project(x[0])) },
	}
	// t=0 maps to the interval midpoint.
	result, err := optimize.Minimize(problem, []float64{0}, nil, &optimize.NelderMead{})
	if err != nil {
		return 0, fmt.Errorf("nelder-mead: %w", err)
	}
	if err := result.Status.Err(); err != nil {
		return 0, fmt.Errorf("nelder-mead did not converge: %w", err)
	}
	return project(result.X[0]), nil
}
