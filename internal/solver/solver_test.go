package solver

import (
	"errors"
	"math"
	"testing"
)

// quadratic with vertex at x=v: (x-v)^2 + 1
func parabola(v float64) Objective {
	return func(x float64) float64 { return (x-v)*(x-v) + 1 }
}

func TestClosedForm(t *testing.T) {
	tests := []struct {
		name        string
		f           Objective
		lo, hi      float64
		expected    float64
		expectedErr error
	}{
		{name: "interior", f: parabola(1.75), lo: 1, hi: 3, expected: 1.75},
		{name: "clamped_low", f: parabola(0.2), lo: 1, hi: 3, expected: 1},
		{name: "clamped_high", f: parabola(4.5), lo: 1, hi: 3, expected: 3},
		{name: "err_constant", f: func(x float64) float64 { return 7 }, lo: 1, hi: 3, expectedErr: ErrDegenerate},
		{name: "err_concave", f: func(x float64) float64 { return -x * x }, lo: 1, hi: 3, expectedErr: ErrDegenerate},
		{name: "err_bounds", f: parabola(0), lo: 3, hi: 1, expectedErr: ErrBounds},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ClosedForm{}.Minimize(test.f, test.lo, test.hi)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Errorf("compute Minimize, got: %v, expected: %v", err, test.expectedErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("the error should not be returned: %v", err)
			}
			if math.Abs(got-test.expected) > 1e-9 {
				t.Errorf("compute Minimize, got: %f, expected: %f", got, test.expected)
			}
		})
	}
}

func TestNelderMead(t *testing.T) {
	tests := []struct {
		name     string
		f        Objective
		lo, hi   float64
		expected float64
		tol      float64
	}{
		{name: "interior_quadratic", f: parabola(1.75), lo: 1, hi: 3, expected: 1.75, tol: 1e-4},
		// the sine transform flattens the objective near the bounds, so the
		// boundary optimum converges more loosely
		{name: "clamped_low", f: parabola(0.2), lo: 1, hi: 3, expected: 1, tol: 5e-3},
		{name: "non_quadratic", f: func(x float64) float64 { return math.Abs(x - 2.5) }, lo: 1, hi: 3, expected: 2.5, tol: 1e-3},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := NelderMead{}.Minimize(test.f, test.lo, test.hi)
			if err != nil {
				t.Fatalf("the error should not be returned: %v", err)
			}
			if math.Abs(got-test.expected) > test.tol {
				t.Errorf("compute Minimize, got: %f, expected: %f", got, test.expected)
			}
		})
	}
}

func TestFor(t *testing.T) {
	if _, err := For(MethodClosedForm); err != nil {
		t.Errorf("the error should not be returned: %v", err)
	}
	if _, err := For(MethodNelderMead); err != nil {
		t.Errorf("the error should not be returned: %v", err)
	}
	if _, err := For(Method("SIMPLEX")); err == nil {
		t.Errorf("an unknown method must return an error")
	}
}
