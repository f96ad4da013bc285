package regress

import (
	"fmt"
	"math"
)

// AIC computes the Akaike information criterion 2k - 2·lnL for a model with
// k fitted parameters and log-likelihood lnL. Lower is better.
func AIC(logLikelihood float64, k int) float64 {
	return 2*float64(k) - 2*logLikelihood
}

// AICLeastSquares computes AIC for a Gaussian least-squares model using the
// concentrated likelihood: n·ln(SSE/n) + 2k. Additive constants that are
// identical across models on the same data are dropped, so only differences
// between scores are meaningful.
func AICLeastSquares(sse float64, n, k int) float64 {
	return float64(n)*math.Log(sse/float64(n)) + 2*float64(k)
}

// PolynomialFit pairs a candidate polynomial with its selection score.
type PolynomialFit struct {
	Model Polynomial
	SSE   float64
	AIC   float64
}

// SelectPolynomial fits polynomials of degree 0 through maxDegree and
// returns the AIC-minimizing fit together with the full score table,
// indexed by degree. Ties keep the lower degree.
//
// Returns ErrInvalidDegree for negative maxDegree; a degree that cannot be
// fit (too few observations) fails the whole selection.
func SelectPolynomial(d Dataset, maxDegree int) (best PolynomialFit, table []PolynomialFit, err error) {
	if maxDegree < 0 {
		return PolynomialFit{}, nil, fmt.Errorf("%w: max degree %d", ErrInvalidDegree, maxDegree)
	}

	table = make([]PolynomialFit, 0, maxDegree+1)
	bestAIC := math.Inf(1)

	for degree := 0; degree <= maxDegree; degree++ {
		p, err := FitPolynomial(d, degree)
		if err != nil {
			return PolynomialFit{}, nil, err
		}
		sse := p.SSE(d)
		fit := PolynomialFit{
			Model: p,
			SSE:   sse,
			AIC:   AICLeastSquares(sse, d.Len(), p.NumParams()),
		}
		table = append(table, fit)

		if fit.AIC < bestAIC {
			bestAIC = fit.AIC
			best = fit
		}
	}
	return best, table, nil
}
