package regress

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-4

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %.6f, want %.6f (diff %.6f)", name, got, want, math.Abs(got-want))
	}
}

func TestNewDataset(t *testing.T) {
	d, err := NewDataset([]float64{1, 2, 3}, []float64{4, 5, 6})
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	if d.Len() != 3 {
		t.Errorf("Len = %d, want 3", d.Len())
	}
}

func TestNewDatasetLengthMismatch(t *testing.T) {
	_, err := NewDataset([]float64{1, 2}, []float64{1})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestNewDatasetEmpty(t *testing.T) {
	_, err := NewDataset(nil, nil)
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("err = %v, want ErrEmptyDataset", err)
	}
}

func TestNewDatasetCopies(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	d, err := NewDataset(x, y)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}

	// Mutating the originals must not reach the dataset.
	x[0] = 100
	y[0] = 100
	if d.X[0] != 1 || d.Y[0] != 4 {
		t.Errorf("dataset shares backing arrays with caller: X[0]=%v Y[0]=%v", d.X[0], d.Y[0])
	}
}

func TestDatasetMeanY(t *testing.T) {
	d, _ := NewDataset([]float64{0, 1, 2, 3}, []float64{1, 2, 3, 6})
	assertFloat(t, "MeanY", d.MeanY(), 3.0)
}

func TestDatasetVarY(t *testing.T) {
	// Sample variance of {1, 2, 3, 6}: mean 3, squared deviations 4+1+0+9 = 14, /3.
	d, _ := NewDataset([]float64{0, 1, 2, 3}, []float64{1, 2, 3, 6})
	assertFloat(t, "VarY", d.VarY(), 14.0/3.0)
}

func TestDatasetVarYSingleObservation(t *testing.T) {
	d, _ := NewDataset([]float64{1}, []float64{5})
	got := d.VarY()
	if math.IsNaN(got) {
		t.Fatal("VarY = NaN for single observation, want 0")
	}
	assertFloat(t, "VarY", got, 0.0)
}
