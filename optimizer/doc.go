// Package optimizer minimizes scalar objective functions over small
// parameter vectors.
//
// It provides two methods behind one entry point, [Minimize]:
//
//   - [NelderMead] (the default) delegates to gonum's derivative-free
//     simplex method and treats the objective as a black box.
//
//   - [Adam] runs full-batch gradient descent with the Adam update rule and
//     a cosine annealing learning rate. Gradients are computed via numerical
//     central differences, so the objective still needs no derivatives.
//
// # Usage
//
//	sse := regress.SumSquares(dataset)
//	w, err := optimizer.Minimize(ctx, sse, []float64{0, 0}, optimizer.Config{})
//
// Optional per-coordinate [Bounds] keep parameters inside a box; the Adam
// path honors context cancellation between iterations.
package optimizer
