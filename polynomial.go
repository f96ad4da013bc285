package regress

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Polynomial is a fitted polynomial model. Coeffs[i] is the coefficient of
// x^i, so Coeffs[0] is the constant term.
type Polynomial struct {
	Coeffs []float64 `json:"coeffs"`
}

// FitPolynomial fits a degree-k least-squares polynomial to the dataset by
// solving the Vandermonde system in the least-squares sense (QR).
//
// Returns ErrInvalidDegree for negative degrees and ErrInsufficientData when
// the dataset has fewer than degree+1 observations.
func FitPolynomial(d Dataset, degree int) (Polynomial, error) {
	if degree < 0 {
		return Polynomial{}, fmt.Errorf("%w: degree %d", ErrInvalidDegree, degree)
	}
	n := d.Len()
	k := degree + 1
	if n < k {
		return Polynomial{}, fmt.Errorf("%w: degree %d needs %d observations, have %d",
			ErrInsufficientData, degree, k, n)
	}

	// Vandermonde design matrix: row i is [1, x_i, x_i², ...].
	design := mat.NewDense(n, k, nil)
	for i, x := range d.X {
		v := 1.0
		for j := 0; j < k; j++ {
			design.Set(i, j, v)
			v *= x
		}
	}
	rhs := mat.NewVecDense(n, d.Y)

	var coef mat.VecDense
	if err := coef.SolveVec(design, rhs); err != nil {
		return Polynomial{}, fmt.Errorf("regress: solving degree-%d least squares: %w", degree, err)
	}

	coeffs := make([]float64, k)
	for j := 0; j < k; j++ {
		coeffs[j] = coef.AtVec(j)
	}
	return Polynomial{Coeffs: coeffs}, nil
}

// Degree returns the polynomial degree (number of coefficients minus one).
func (p Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// NumParams returns the number of fitted parameters, the k used by AIC.
func (p Polynomial) NumParams() int {
	return len(p.Coeffs)
}

// Predict returns the fitted value at x (Horner evaluation).
func (p Polynomial) Predict(x float64) float64 {
	return polyAt(p.Coeffs, x)
}

// SSE returns the sum of squared residuals of the polynomial on d.
func (p Polynomial) SSE(d Dataset) float64 {
	return SumSquares(d)(p.Coeffs)
}

func (p Polynomial) String() string {
	var b strings.Builder
	for i, c := range p.Coeffs {
		if i > 0 {
			b.WriteString(" + ")
		}
		switch i {
		case 0:
			fmt.Fprintf(&b, "%.4f", c)
		case 1:
			fmt.Fprintf(&b, "%.4f*x", c)
		default:
			fmt.Fprintf(&b, "%.4f*x^%d", c, i)
		}
	}
	return "y = " + b.String()
}
