package optimizer

import (
	"fmt"

	"gonum.org/v1/gonum/optimize"
)

// minimizeNelderMead delegates to gonum's derivative-free simplex method.
// Box constraints are enforced by projecting candidate points inside the
// objective and clamping the returned minimizer.
func minimizeNelderMead(obj func(w []float64) float64, start []float64, cfg Config) ([]float64, error) {
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			if cfg.Bounds != nil {
				projected := make([]float64, len(x))
				copy(projected, x)
				cfg.Bounds.clamp(projected)
				return obj(projected)
			}
			return obj(x)
		},
	}

	settings := &optimize.Settings{
		MajorIterations: cfg.MaxIter,
		Converger: &optimize.FunctionConverge{
			Absolute:   cfg.Tolerance,
			Iterations: 100,
		},
	}

	result, err := optimize.Minimize(problem, start, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("optimizer: nelder-mead: %w", err)
	}

	w := result.X
	cfg.Bounds.clamp(w)
	if result.Status == optimize.IterationLimit {
		return w, ErrNotConverged
	}
	return w, nil
}
