package regress

import (
	"math"
	"testing"
)

// --- SumSquares / SumAbs ---

func TestSumSquaresHand(t *testing.T) {
	// Residuals for y = 2x: 0, 0, 1. SSE = 1.
	d, _ := NewDataset([]float64{1, 2, 3}, []float64{2, 4, 7})
	got := SumSquares(d)([]float64{0, 2})
	assertFloat(t, "SumSquares", got, 1.0)
}

func TestSumSquaresPerfectFit(t *testing.T) {
	d, _ := NewDataset([]float64{0, 1, 2}, []float64{1, 3, 5})
	got := SumSquares(d)([]float64{1, 2})
	assertFloat(t, "SumSquares(exact)", got, 0.0)
}

func TestSumAbsHand(t *testing.T) {
	// Residuals for y = 2x: 0, -1, 2. SAE = 3.
	d, _ := NewDataset([]float64{1, 2, 3}, []float64{2, 3, 8})
	got := SumAbs(d)([]float64{0, 2})
	assertFloat(t, "SumAbs", got, 3.0)
}

func TestSumSquaresCubicCoeffs(t *testing.T) {
	// Objectives accept any coefficient length; w = [1, 0, 0, 1] is 1 + x³.
	d, _ := NewDataset([]float64{2}, []float64{10})
	got := SumSquares(d)([]float64{1, 0, 0, 1})
	assertFloat(t, "SumSquares(cubic)", got, 1.0)
}

// --- NegLogLikelihood ---

func TestNegLogLikelihoodAtZeroModel(t *testing.T) {
	// The zero model predicts p = 0.5 everywhere: NLL = n·ln(2).
	d, _ := NewDataset([]float64{1, 2, 3, 4}, []float64{0, 1, 0, 1})
	got := NegLogLikelihood(d)([]float64{0, 0})
	assertFloat(t, "NLL(zero model)", got, 4*math.Log(2))
}

func TestNegLogLikelihoodClamp(t *testing.T) {
	// A huge slope predicts p ≈ 1 for a 0 label; the clamp keeps NLL finite.
	d, _ := NewDataset([]float64{10}, []float64{0})
	got := NegLogLikelihood(d)([]float64{0, 100})
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("NLL = %v, should not be Inf/NaN", got)
	}
}

func TestNegLogLikelihoodPerfectSeparation(t *testing.T) {
	// Correctly classified extreme predictions cost almost nothing.
	d, _ := NewDataset([]float64{-10, 10}, []float64{0, 1})
	got := NegLogLikelihood(d)([]float64{0, 5})
	if got > 1e-6 {
		t.Errorf("NLL = %v, want near 0 for perfect separation", got)
	}
}

// --- polyAt ---

func TestPolyAtHorner(t *testing.T) {
	// 1 - 2x + 3x² at x = 2: 1 - 4 + 12 = 9.
	got := polyAt([]float64{1, -2, 3}, 2)
	assertFloat(t, "polyAt", got, 9.0)
}

func TestPolyAtConstant(t *testing.T) {
	got := polyAt([]float64{7}, 100)
	assertFloat(t, "polyAt(constant)", got, 7.0)
}
