package regress

import "math"

// Objective is a scalar criterion over a candidate parameter vector.
// Lower is better. Objectives returned by this package are pure functions
// of w and can be handed to any minimizer.
type Objective func(w []float64) float64

const probClamp = 1e-7

// SumSquares returns the sum-of-squared-residuals objective
// Σ (y_i - f(x_i))², where f is the polynomial with coefficients w
// (w[0] is the constant term). A two-element w is a straight line.
func SumSquares(d Dataset) Objective {
	return func(w []float64) float64 {
		var total float64
		for i, x := range d.X {
			r := d.Y[i] - polyAt(w, x)
			total += r * r
		}
		return total
	}
}

// SumAbs returns the sum-of-absolute-residuals objective Σ |y_i - f(x_i)|.
// Minimizing it gives a fit less sensitive to outliers than least squares.
func SumAbs(d Dataset) Objective {
	return func(w []float64) float64 {
		var total float64
		for i, x := range d.X {
			total += math.Abs(d.Y[i] - polyAt(w, x))
		}
		return total
	}
}

// NegLogLikelihood returns the negative log-likelihood objective for a
// logistic model with w = [intercept, slope] over binary labels:
//
//	-Σ [y_i·ln(p_i) + (1-y_i)·ln(1-p_i)],  p_i = InvLogit(w[0] + w[1]·x_i)
//
// p_i is clamped to [1e-7, 1-1e-7] to avoid log(0).
func NegLogLikelihood(d Dataset) Objective {
	return func(w []float64) float64 {
		var total float64
		for i, x := range d.X {
			p := InvLogit(w[0] + w[1]*x)
			p = math.Max(probClamp, math.Min(p, 1-probClamp))
			y := d.Y[i]
			total -= y*math.Log(p) + (1-y)*math.Log(1-p)
		}
		return total
	}
}

// polyAt evaluates the polynomial with coefficients w at x (Horner form).
// w[0] is the constant term.
func polyAt(w []float64, x float64) float64 {
	var v float64
	for i := len(w) - 1; i >= 0; i-- {
		v = v*x + w[i]
	}
	return v
}
