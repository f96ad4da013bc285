package optimizer

const gradEps = 1e-6

// gradient computes the numerical gradient of obj at w using central
// differences: dF/dw[i] ≈ (F(w[i]+ε) - F(w[i]-ε)) / (2ε).
func gradient(obj func(w []float64) float64, w []float64) []float64 {
	grad := make([]float64, len(w))
	probe := make([]float64, len(w))
	copy(probe, w)

	for i := range w {
		probe[i] = w[i] + gradEps
		fPlus := obj(probe)
		probe[i] = w[i] - gradEps
		fMinus := obj(probe)
		probe[i] = w[i]

		grad[i] = (fPlus - fMinus) / (2 * gradEps)
	}
	return grad
}
