package dataset

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyDataset = errors.New("dataset is empty")
	ErrLenMismatch  = errors.New("measurement columns have different lengths")
	ErrNonPositive  = errors.New("measurements must be positive")
)

// Observation is one measured tree. Diameter is girth in inches, height in
// feet, volume in cubic feet. Species is optional and empty when the source
// file has no species column.
type Observation struct {
	Diameter float64
	Height   float64
	Volume   float64
	Species  string
}

// Radius returns the trunk radius in feet.
func (o Observation) Radius() float64 {
	return o.Diameter / 24
}

// ConeCoeff returns the regression coefficient w = (pi/3)*h*r^2, so that the
// truncated-cone model reads V = w * (1 + alpha + alpha^2).
func (o Observation) ConeCoeff() float64 {
	r := o.Radius()
	return math.Pi / 3 * o.Height * r * r
}

// Dataset is an immutable ordered collection of observations.
type Dataset struct {
	obs []Observation
}

func New(obs []Observation) (*Dataset, error) {
	if len(obs) == 0 {
		return nil, ErrEmptyDataset
	}
	for i, o := range obs {
		if o.Diameter <= 0 || o.Height <= 0 || o.Volume <= 0 {
			return nil, fmt.Errorf("row %d: %w", i, ErrNonPositive)
		}
	}
	ds := &Dataset{obs: make([]Observation, len(obs))}
	copy(ds.obs, obs)
	return ds, nil
}

// FromColumns builds a dataset from parallel measurement columns.
func FromColumns(diameter, height, volume []float64) (*Dataset, error) {
	if len(diameter) != len(height) || len(height) != len(volume) {
		return nil, fmt.Errorf(
			"diameter has length %d, height %d, volume %d: %w",
			len(diameter), len(height), len(volume), ErrLenMismatch,
		)
	}
	obs := make([]Observation, len(diameter))
	for i := range diameter {
		obs[i] = Observation{Diameter: diameter[i], Height: height[i], Volume: volume[i]}
	}
	return New(obs)
}

func (ds *Dataset) Len() int {
	return len(ds.obs)
}

func (ds *Dataset) At(i int) Observation {
	return ds.obs[i]
}

func (ds *Dataset) Observations() []Observation {
	obs := make([]Observation, len(ds.obs))
	copy(obs, ds.obs)
	return obs
}

// ConeCoeffs returns the per-row cone coefficients w = (pi/3)*h*r^2.
func (ds *Dataset) ConeCoeffs() []float64 {
	ws := make([]float64, len(ds.obs))
	for i, o := range ds.obs {
		ws[i] = o.ConeCoeff()
	}
	return ws
}

func (ds *Dataset) Volumes() []float64 {
	vs := make([]float64, len(ds.obs))
	for i, o := range ds.obs {
		vs[i] = o.Volume
	}
	return vs
}

func (ds *Dataset) Diameters() []float64 {
	vs := make([]float64, len(ds.obs))
	for i, o := range ds.obs {
		vs[i] = o.Diameter
	}
	return vs
}

func (ds *Dataset) Heights() []float64 {
	vs := make([]float64, len(ds.obs))
	for i, o := range ds.obs {
		vs[i] = o.Height
	}
	return vs
}

// Subset returns a new dataset holding the rows at the given indices.
func (ds *Dataset) Subset(idx []int) (*Dataset, error) {
	if len(idx) == 0 {
		return nil, ErrEmptyDataset
	}
	obs := make([]Observation, 0, len(idx))
	for _, i := range idx {
		if i < 0 || i >= len(ds.obs) {
			return nil, fmt.Errorf("index %d out of range [0,%d)", i, len(ds.obs))
		}
		obs = append(obs, ds.obs[i])
	}
	return New(obs)
}
