package regress

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Dataset holds paired observations of one independent and one dependent
// variable. X and Y always have equal length and are never mutated after
// construction.
type Dataset struct {
	X []float64
	Y []float64
}

// NewDataset creates a Dataset from parallel x and y slices.
// Returns ErrLengthMismatch if the slices differ in length and
// ErrEmptyDataset if they are empty. The slices are copied.
func NewDataset(x, y []float64) (Dataset, error) {
	if len(x) != len(y) {
		return Dataset{}, fmt.Errorf("%w: len(x) = %d, len(y) = %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return Dataset{}, ErrEmptyDataset
	}
	d := Dataset{
		X: make([]float64, len(x)),
		Y: make([]float64, len(y)),
	}
	copy(d.X, x)
	copy(d.Y, y)
	return d, nil
}

// Len returns the number of observations.
func (d Dataset) Len() int {
	return len(d.X)
}

// MeanY returns the mean of the dependent variable.
func (d Dataset) MeanY() float64 {
	return stat.Mean(d.Y, nil)
}

// VarY returns the unbiased sample variance of the dependent variable.
// A single observation has no sample variance; VarY returns 0 for it.
func (d Dataset) VarY() float64 {
	if len(d.Y) < 2 {
		return 0
	}
	return stat.Variance(d.Y, nil)
}
