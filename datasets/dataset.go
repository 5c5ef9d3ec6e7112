// Package datasets implements the labeled sparse dataset used for training
package datasets

import "fmt"

import "gonum.org/v1/gonum/stat"

import "github.com/neurlang/smsspam/sparse"

// Dataset is a feature matrix with one label per row, aligned by index.
type Dataset struct {
	X *sparse.Matrix
	Y []float64
}

// New pairs a feature matrix with its labels
func New(x *sparse.Matrix, y []float64) (*Dataset, error) {
	if x.Rows() != len(y) {
		return nil, fmt.Errorf("dataset has %d rows but %d labels", x.Rows(), len(y))
	}
	return &Dataset{X: x, Y: y}, nil
}

// Len returns the number of examples
func (d *Dataset) Len() int {
	return len(d.Y)
}

// Slice returns an independent copy of the given rows, in the given order
func (d *Dataset) Slice(indices []int) *Dataset {
	y := make([]float64, len(indices))
	for i, idx := range indices {
		y[i] = d.Y[idx]
	}
	return &Dataset{
		X: d.X.SelectRows(indices),
		Y: y,
	}
}

// PositiveFraction returns the share of rows labeled 1.0
func (d *Dataset) PositiveFraction() float64 {
	if len(d.Y) == 0 {
		return 0
	}
	return stat.Mean(d.Y, nil)
}
