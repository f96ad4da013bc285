package regress

import "errors"

// Sentinel errors for the regress package.
// Use errors.Is to check: errors.Is(err, regress.ErrLengthMismatch)
var (
	ErrLengthMismatch   = errors.New("regress: x and y lengths differ")
	ErrEmptyDataset     = errors.New("regress: dataset has no observations")
	ErrInsufficientData = errors.New("regress: fewer observations than model parameters")
	ErrInvalidDegree    = errors.New("regress: polynomial degree must be non-negative")
	ErrBinaryLabels     = errors.New("regress: response labels must be 0 or 1")
	ErrColumnNotFound   = errors.New("regress: column not found in header")
)
