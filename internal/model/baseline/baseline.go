// Package baseline fits the ordinary least-squares comparison model
// volume ~ 1 + diameter + height + diameter^2*height.
package baseline

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/jh-206/Tree-Volume/internal/dataset"
)

// ErrNotFitted is returned by Predict before a successful Fit.
var ErrNotFitted = errors.New("model is not fitted")

const nFeatures = 4

// OLS is the unconstrained regression baseline the cone model is judged
// against in cross-validation.
type OLS struct {
	coef   []float64
	fitted bool
}

func New() *OLS {
	return &OLS{}
}

// Fit estimates the coefficients by QR least squares. Rank deficiency in
// the design matrix surfaces as an error.
func (m *OLS) Fit(ds *dataset.Dataset) error {
	n := ds.Len()
	x := designMatrix(ds)
	y := mat.NewVecDense(n, ds.Volumes())

	var coef mat.VecDense
	if err := coef.SolveVec(x, y); err != nil {
		return fmt.Errorf("solve baseline model: %w", err)
	}
	m.coef = make([]float64, nFeatures)
	for i := 0; i < nFeatures; i++ {
		m.coef[i] = coef.AtVec(i)
	}
	m.fitted = true
	return nil
}

// Predict returns modeled volumes for the dataset rows.
func (m *OLS) Predict(ds *dataset.Dataset) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	x := designMatrix(ds)
	out := make([]float64, ds.Len())
	for i := range out {
		var yhat float64
		for j := 0; j < nFeatures; j++ {
			yhat += m.coef[j] * x.At(i, j)
		}
		out[i] = yhat
	}
	return out, nil
}

func (m *OLS) Intercept() float64 {
	if !m.fitted {
		return 0
	}
	return m.coef[0]
}

// Coef returns the non-intercept coefficients in design-matrix order:
// diameter, height, diameter^2*height.
func (m *OLS) Coef() []float64 {
	if !m.fitted {
		return nil
	}
	out := make([]float64, nFeatures-1)
	copy(out, m.coef[1:])
	return out
}

func designMatrix(ds *dataset.Dataset) *mat.Dense {
	n := ds.Len()
	x := mat.NewDense(n, nFeatures, nil)
	for i := 0; i < n; i++ {
		o := ds.At(i)
		x.Set(i, 0, 1)
		x.Set(i, 1, o.Diameter)
		x.Set(i, 2, o.Height)
		x.Set(i, 3, o.Diameter*o.Diameter*o.Height)
	}
	return x
}
