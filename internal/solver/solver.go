// Package solver finds the scalar minimizing an objective over a closed
// interval. The fit code depends only on the Solver interface so the
// numerical method stays swappable.
package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrBounds is returned when the interval is empty (lo >= hi).
	ErrBounds = errors.New("invalid bounds")
	// ErrDegenerate is returned when the objective carries no curvature over
	// the interval, so every point is equally good.
	ErrDegenerate = errors.New("degenerate objective")
)

// Objective is a scalar function to minimize.
type Objective func(x float64) float64

type Solver interface {
	Minimize(f Objective, lo, hi float64) (float64, error)
}

type Method string

const (
	MethodClosedForm Method = "CLOSED_FORM"
	MethodNelderMead Method = "NELDER_MEAD"
)

type Config struct {
	Method Method `envconfig:"TREEVOL_SOLVER_METHOD" default:"CLOSED_FORM" toml:"method"`
}

// For returns the solver implementing the configured method.
func For(m Method) (Solver, error) {
	switch m {
	case MethodClosedForm:
		return ClosedForm{}, nil
	case MethodNelderMead:
		return NelderMead{}, nil
	default:
		return nil, fmt.Errorf("unknown solver method: %s", m)
	}
}
