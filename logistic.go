package regress

import (
	"context"
	"fmt"
	"math"

	"github.com/go-regress/regress/optimizer"
)

// Logit maps a probability in (0, 1) to the real line: ln(p / (1-p)).
func Logit(p float64) float64 {
	return math.Log(p / (1 - p))
}

// InvLogit is the logistic sigmoid 1 / (1 + e^-z), the inverse of Logit.
func InvLogit(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// Logistic is a fitted binary-outcome model
// P(y=1 | x) = InvLogit(Intercept + Slope·x).
type Logistic struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

// FitLogistic fits a logistic regression model by minimizing the negative
// log-likelihood with the generic minimizer, starting from the zero model.
//
// The dataset's Y values must all be 0 or 1; otherwise ErrBinaryLabels is
// returned. Cancellation is checked before the fit starts; the Nelder-Mead
// run itself is not interruptible.
func FitLogistic(ctx context.Context, d Dataset) (Logistic, error) {
	if d.Len() < 2 {
		return Logistic{}, fmt.Errorf("%w: need at least 2 observations, have %d",
			ErrInsufficientData, d.Len())
	}
	for i, y := range d.Y {
		if y != 0 && y != 1 {
			return Logistic{}, fmt.Errorf("%w: y[%d] = %v", ErrBinaryLabels, i, y)
		}
	}

	w, err := optimizer.Minimize(ctx, NegLogLikelihood(d), []float64{0, 0}, optimizer.Config{})
	if err != nil {
		return Logistic{}, fmt.Errorf("regress: fitting logistic model: %w", err)
	}
	return Logistic{Intercept: w[0], Slope: w[1]}, nil
}

// Predict returns the predicted probability P(y=1 | x).
func (m Logistic) Predict(x float64) float64 {
	return InvLogit(m.Intercept + m.Slope*x)
}

// Classify returns true when the predicted probability is at least 0.5,
// equivalently when Intercept + Slope·x >= 0.
func (m Logistic) Classify(x float64) bool {
	return m.Intercept+m.Slope*x >= 0
}

// LogLikelihood returns the log-likelihood of the model on d.
func (m Logistic) LogLikelihood(d Dataset) float64 {
	return -NegLogLikelihood(d)([]float64{m.Intercept, m.Slope})
}

func (m Logistic) String() string {
	return fmt.Sprintf("P(y=1) = invlogit(%.4f + %.4f*x)", m.Intercept, m.Slope)
}
