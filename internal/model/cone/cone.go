// Package cone fits the truncated-cone trunk model
// V = (pi/3)*h*r^2*(1+alpha+alpha^2) by constrained least squares on the
// substituted variable a = 1+alpha+alpha^2.
package cone

import (
	"errors"
	"fmt"
	"math"

	"github.com/jh-206/Tree-Volume/internal/dataset"
	"github.com/jh-206/Tree-Volume/internal/solver"
)

// Bounds on the substituted variable: alpha in [0,1] maps to a in [1,3].
const (
	ALo = 1.0
	AHi = 3.0
)

var (
	ErrDiscriminant = errors.New("back-transform discriminant is negative")
	ErrLenMismatch  = errors.New("coefficient and volume arrays have different lengths")
)

// Fit estimates a on the full dataset.
func Fit(ds *dataset.Dataset, s solver.Solver) (float64, error) {
	return FitArrays(ds.ConeCoeffs(), ds.Volumes(), s)
}

// FitArrays minimizes sum((w_i*a - v_i)^2) over a in [ALo,AHi]. The w array
// holds per-row cone coefficients (pi/3)*h*r^2 and v the observed volumes.
// All-zero coefficients make the objective constant and return
// solver.ErrDegenerate.
func FitArrays(w, v []float64, s solver.Solver) (float64, error) {
	if len(w) != len(v) {
		return 0, fmt.Errorf("w has length %d, v %d: %w", len(w), len(v), ErrLenMismatch)
	}
	if len(w) == 0 {
		return 0, dataset.ErrEmptyDataset
	}
	allZero := true
	for _, wi := range w {
		if wi != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return 0, fmt.Errorf("cone coefficients are all zero: %w", solver.ErrDegenerate)
	}

	a, err := s.Minimize(Residual(w, v), ALo, AHi)
	if err != nil {
		return 0, fmt.Errorf("fit cone model: %w", err)
	}
	return a, nil
}

// Residual returns the least-squares objective in a for the given rows.
func Residual(w, v []float64) solver.Objective {
	return func(a float64) float64 {
		var ss float64
		for i := range w {
			d := w[i]*a - v[i]
			ss += d * d
		}
		return ss
	}
}

// Alpha back-transforms a fitted a into the taper ratio, the larger root of
// alpha^2+alpha+(1-a)=0; it lies in [0,1] for a in [ALo,AHi]. The other root
// is always negative and is discarded. a < 3/4 has no real root and reports
// ErrDiscriminant.
func Alpha(a float64) (float64, error) {
	disc := 4*a - 3
	if disc < 0 {
		return 0, fmt.Errorf("a=%v: %w", a, ErrDiscriminant)
	}
	return (-1 + math.Sqrt(disc)) / 2, nil
}

// A is the forward substitution 1+alpha+alpha^2; inverse of Alpha.
func A(alpha float64) float64 {
	return 1 + alpha + alpha*alpha
}

// Predict returns the modeled volumes w_i*a.
func Predict(a float64, w []float64) []float64 {
	out := make([]float64, len(w))
	for i, wi := range w {
		out[i] = wi * a
	}
	return out
}
