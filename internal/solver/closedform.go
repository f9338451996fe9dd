package solver

import (
	"fmt"
	"math"
)

var _ Solver = ClosedForm{}

// ClosedForm solves box-constrained minimization of a quadratic objective
// exactly. A least-squares objective in one scalar is an exact parabola, so
// three samples recover it and the constrained optimum is the vertex clamped
// to the interval. Only valid for quadratic objectives.
type ClosedForm struct{}

func (ClosedForm) Minimize(f Objective, lo, hi float64) (float64, error) {
	if !(lo < hi) {
		return 0, fmt.Errorf("lo=%v hi=%v: %w", lo, hi, ErrBounds)
	}
	h := (hi - lo) / 2
	mid := lo + h
	fLo, fMid, fHi := f(lo), f(mid), f(hi)
	if !finite(fLo) || !finite(fMid) || !finite(fHi) {
		return 0, fmt.Errorf("objective is not finite on [%v,%v]", lo, hi)
	}

	// Second difference; proportional to the parabola's curvature.
	c2 := fLo - 2*fMid + fHi
	scale := math.Max(math.Abs(fLo), math.Max(math.Abs(fMid), math.Abs(fHi)))
	if c2 <= scale*1e-12 {
		return 0, ErrDegenerate
	}

	vertex := mid - h*(fHi-fLo)/(2*c2)
	return clamp(vertex, lo, hi), nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
