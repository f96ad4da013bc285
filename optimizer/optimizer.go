package optimizer

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrEmptyStart is returned when the start vector has no elements.
	ErrEmptyStart = errors.New("optimizer: empty start vector")

	// ErrDimensionMismatch is returned when bounds and start vector lengths differ.
	ErrDimensionMismatch = errors.New("optimizer: bounds length does not match parameter length")

	// ErrNotConverged is returned when Nelder-Mead hits the iteration limit
	// before the objective stops improving.
	ErrNotConverged = errors.New("optimizer: did not converge within iteration limit")
)

// Method selects the minimization algorithm.
type Method int

const (
	// NelderMead is gonum's derivative-free simplex method.
	NelderMead Method = iota
	// Adam is gradient descent with the Adam update rule on numerical
	// central-difference gradients.
	Adam
)

// Bounds constrains each parameter to [Lower[i], Upper[i]].
type Bounds struct {
	Lower []float64
	Upper []float64
}

// clamp projects w onto the bounds box in place.
func (b *Bounds) clamp(w []float64) {
	if b == nil {
		return
	}
	for i := range w {
		if w[i] < b.Lower[i] {
			w[i] = b.Lower[i]
		}
		if w[i] > b.Upper[i] {
			w[i] = b.Upper[i]
		}
	}
}

func (b *Bounds) validate(n int) error {
	if b == nil {
		return nil
	}
	if len(b.Lower) != n || len(b.Upper) != n {
		return fmt.Errorf("%w: %d parameters, %d lower, %d upper",
			ErrDimensionMismatch, n, len(b.Lower), len(b.Upper))
	}
	return nil
}

// Config configures the minimization.
// Zero values are replaced with sensible defaults.
type Config struct {
	Method       Method   // default NelderMead
	MaxIter      int      // default 1000
	Tolerance    float64  // default 1e-9, absolute objective change (Adam)
	LearningRate float64  // default 0.05 (Adam)
	Bounds       *Bounds  // optional box constraints
}

// Minimize finds a parameter vector that minimizes obj, starting from x0.
// x0 is not modified. The context cancels an Adam run between iterations;
// the Nelder-Mead method runs to its own completion once started.
//
// Returns the best parameters found. A non-nil error reports invalid input,
// cancellation, or failure to converge; on ErrNotConverged and context
// errors the returned vector is still the best one seen.
func Minimize(ctx context.Context, obj func(w []float64) float64, x0 []float64, cfg Config) ([]float64, error) {
	if len(x0) == 0 {
		return nil, ErrEmptyStart
	}
	if err := cfg.Bounds.validate(len(x0)); err != nil {
		return nil, err
	}
	if cfg.MaxIter == 0 {
		cfg.MaxIter = 1000
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = 1e-9
	}
	if cfg.LearningRate == 0 {
		cfg.LearningRate = 0.05
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := make([]float64, len(x0))
	copy(start, x0)
	cfg.Bounds.clamp(start)

	switch cfg.Method {
	case Adam:
		return minimizeAdam(ctx, obj, start, cfg)
	default:
		return minimizeNelderMead(obj, start, cfg)
	}
}

// minimizeAdam runs full-batch Adam over the whole cosine annealing
// schedule (MaxIter steps), stopping early once the objective change drops
// below Tolerance. The annealed learning rate reaches zero at MaxIter, so
// exhausting the schedule is the normal way a run ends.
func minimizeAdam(ctx context.Context, obj func(w []float64) float64, w []float64, cfg Config) ([]float64, error) {
	adam := newAdam(cfg.LearningRate, len(w))
	ca := newCosineAnnealing(cfg.LearningRate, cfg.MaxIter)

	best := make([]float64, len(w))
	copy(best, w)
	bestF := obj(w)
	prevF := bestF

	for iter := 0; iter < cfg.MaxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return best, err
		}

		grad := gradient(obj, w)
		adam.SetLR(ca.LR())
		w = adam.Update(w, grad)
		cfg.Bounds.clamp(w)
		ca.Step()

		f := obj(w)
		if f < bestF {
			bestF = f
			copy(best, w)
		}
		if abs(prevF-f) < cfg.Tolerance {
			return best, nil
		}
		prevF = f
	}
	return best, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
