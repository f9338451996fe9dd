package cone

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/jh-206/Tree-Volume/internal/dataset"
)

// ErrDegenerateLabels is returned when the species column is identically
// zero, which makes the offset term unidentifiable.
var ErrDegenerateLabels = errors.New("species labels are all zero")

// SpeciesFit is the extended model estimate: fitted a plus the additive
// per-species offset beta.
type SpeciesFit struct {
	A    float64
	Beta float64
}

// FitSpecies minimizes sum((w_i*a + s_i*beta - v_i)^2) subject to
// a in [ALo,AHi] with beta free. The unconstrained two-variable least
// squares is solved first; if the fitted a violates its bounds, a is clamped
// to the violated bound and beta re-solved for that fixed a, which is the
// exact active-set step for this program.
func FitSpecies(ds *dataset.Dataset, labels []float64) (SpeciesFit, error) {
	var fit SpeciesFit
	if ds.Len() != len(labels) {
		return fit, fmt.Errorf("dataset has %d rows, labels %d: %w", ds.Len(), len(labels), ErrLenMismatch)
	}
	w := ds.ConeCoeffs()
	v := ds.Volumes()

	var sumS2 float64
	for _, s := range labels {
		sumS2 += s * s
	}
	if sumS2 == 0 {
		return fit, ErrDegenerateLabels
	}

	n := len(w)
	x := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, w[i])
		x.Set(i, 1, labels[i])
	}
	y := mat.NewVecDense(n, v)

	var coef mat.VecDense
	if err := coef.SolveVec(x, y); err != nil {
		return fit, fmt.Errorf("solve species model: %w", err)
	}
	fit.A = coef.AtVec(0)
	fit.Beta = coef.AtVec(1)

	if fit.A < ALo || fit.A > AHi {
		if fit.A < ALo {
			fit.A = ALo
		} else {
			fit.A = AHi
		}
		// beta given fixed a: least squares of the remaining residual on s.
		var num float64
		for i := range labels {
			num += labels[i] * (v[i] - w[i]*fit.A)
		}
		fit.Beta = num / sumS2
	}
	return fit, nil
}
