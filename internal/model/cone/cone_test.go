package cone

import (
	"errors"
	"math"
	"testing"

	"github.com/jh-206/Tree-Volume/internal/dataset"
	"github.com/jh-206/Tree-Volume/internal/solver"
)

func TestAlphaRoundTrip(t *testing.T) {
	// For any a in [1,3] the back-transform lands in [0,1] and the forward
	// substitution reproduces a.
	for a := 1.0; a <= 3.0; a += 0.01 {
		alpha, err := Alpha(a)
		if err != nil {
			t.Fatalf("a=%f: the error should not be returned: %v", a, err)
		}
		if alpha < 0 || alpha > 1 {
			t.Fatalf("a=%f: alpha %f outside [0,1]", a, alpha)
		}
		if math.Abs(A(alpha)-a) > 1e-12 {
			t.Fatalf("round trip failed: a=%f, alpha=%f, A(alpha)=%f", a, alpha, A(alpha))
		}
	}
}

func TestAlphaDiscriminant(t *testing.T) {
	if _, err := Alpha(0.5); !errors.Is(err, ErrDiscriminant) {
		t.Errorf("compute Alpha, got: %v, expected: %v", err, ErrDiscriminant)
	}
	// boundary of the real-root region
	alpha, err := Alpha(0.75)
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if math.Abs(alpha-(-0.5)) > 1e-12 {
		t.Errorf("compute Alpha(0.75), got: %f, expected: -0.5", alpha)
	}
}

func TestFitArraysSynthetic(t *testing.T) {
	// Volumes generated exactly from the cone formula with alpha=0.5 must be
	// recovered with zero residual.
	alpha := 0.5
	a := A(alpha)
	w := []float64{1, 2, 0.5, 3}
	v := make([]float64, len(w))
	for i, wi := range w {
		v[i] = wi * a
	}
	got, err := FitArrays(w, v, solver.ClosedForm{})
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if math.Abs(got-a) > 1e-9 {
		t.Errorf("compute FitArrays, got: %f, expected: %f", got, a)
	}
	gotAlpha, err := Alpha(got)
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if math.Abs(gotAlpha-alpha) > 1e-9 {
		t.Errorf("compute Alpha, got: %f, expected: %f", gotAlpha, alpha)
	}
	if res := Residual(w, v)(got); res > 1e-12 {
		t.Errorf("residual at the optimum, got: %g, expected: 0", res)
	}
}

func TestFitArraysSingleObservation(t *testing.T) {
	// One row still fits exactly: d=24in is r=1ft, so w=(pi/3)*h.
	obs := dataset.Observation{Diameter: 24, Height: 1, Volume: math.Pi / 3 * 1.75}
	ds, err := dataset.New([]dataset.Observation{obs})
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	a, err := Fit(ds, solver.ClosedForm{})
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if math.Abs(a-1.75) > 1e-9 {
		t.Errorf("compute Fit, got: %f, expected: 1.75", a)
	}
}

func TestFitArraysErrors(t *testing.T) {
	tests := []struct {
		name        string
		w, v        []float64
		expectedErr error
	}{
		{name: "err_len_mismatch", w: []float64{1, 2}, v: []float64{1}, expectedErr: ErrLenMismatch},
		{name: "err_empty", w: nil, v: nil, expectedErr: dataset.ErrEmptyDataset},
		{name: "err_degenerate", w: []float64{0, 0, 0}, v: []float64{1, 2, 3}, expectedErr: solver.ErrDegenerate},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := FitArrays(test.w, test.v, solver.ClosedForm{}); !errors.Is(err, test.expectedErr) {
				t.Errorf("compute FitArrays, got: %v, expected: %v", err, test.expectedErr)
			}
		})
	}
}

func TestFitTreesReference(t *testing.T) {
	// Documented reference result on the canonical 31-tree dataset.
	ds := dataset.Trees()
	a, err := Fit(ds, solver.ClosedForm{})
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if math.Abs(a-1.1595) > 5e-4 {
		t.Errorf("compute Fit, got: %f, expected: 1.1595", a)
	}
	alpha, err := Alpha(a)
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if math.Abs(alpha-0.13995) > 5e-4 {
		t.Errorf("compute Alpha, got: %f, expected: 0.13995", alpha)
	}
}

func TestFitTreesSolverAgreement(t *testing.T) {
	// Both solver implementations land on the same optimum.
	ds := dataset.Trees()
	closed, err := Fit(ds, solver.ClosedForm{})
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	nm, err := Fit(ds, solver.NelderMead{})
	if err != nil {
		t.Fatalf("the error should not be returned: %v", err)
	}
	if math.Abs(closed-nm) > 1e-3 {
		t.Errorf("solvers disagree: closed form %f, nelder-mead %f", closed, nm)
	}
}
