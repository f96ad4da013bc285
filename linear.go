package regress

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/go-regress/regress/optimizer"
)

// Line is a fitted straight-line model y = Intercept + Slope·x.
type Line struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

// FitLine fits a least-squares line to the dataset in closed form.
// Returns ErrInsufficientData if fewer than two observations are present.
func FitLine(d Dataset) (Line, error) {
	if d.Len() < 2 {
		return Line{}, fmt.Errorf("%w: need at least 2 observations for a line, have %d",
			ErrInsufficientData, d.Len())
	}
	alpha, beta := stat.LinearRegression(d.X, d.Y, nil, false)
	return Line{Intercept: alpha, Slope: beta}, nil
}

// FitLineByObjective fits a line by numerically minimizing an arbitrary
// residual criterion such as SumSquares or SumAbs, starting from the zero
// line. With SumSquares it lands on the same line as FitLine; other
// objectives trade that optimality for properties like outlier robustness.
//
// Cancellation is checked before the fit starts. Returns
// ErrInsufficientData if fewer than two observations are present.
func FitLineByObjective(ctx context.Context, d Dataset, obj Objective) (Line, error) {
	if d.Len() < 2 {
		return Line{}, fmt.Errorf("%w: need at least 2 observations for a line, have %d",
			ErrInsufficientData, d.Len())
	}
	w, err := optimizer.Minimize(ctx, obj, []float64{0, 0}, optimizer.Config{})
	if err != nil {
		return Line{}, fmt.Errorf("regress: fitting line by objective: %w", err)
	}
	return Line{Intercept: w[0], Slope: w[1]}, nil
}

// Predict returns the fitted value at x.
func (l Line) Predict(x float64) float64 {
	return l.Intercept + l.Slope*x
}

// Coeffs returns the line as a coefficient vector [intercept, slope],
// the layout the objective functions expect.
func (l Line) Coeffs() []float64 {
	return []float64{l.Intercept, l.Slope}
}

func (l Line) String() string {
	return fmt.Sprintf("y = %.4f + %.4f*x", l.Intercept, l.Slope)
}

// RSquared returns the coefficient of determination of the line on d.
func RSquared(d Dataset, l Line) float64 {
	return stat.RSquared(d.X, d.Y, nil, l.Intercept, l.Slope)
}
