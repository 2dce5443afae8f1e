package curves

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDepthColumn is returned when a file header has no DEPTH token.
	ErrMissingDepthColumn = errors.New("DEPTH column not found")

	// ErrEmptyCurve is returned when a curve reaches clustering with no samples.
	ErrEmptyCurve = errors.New("curve has no samples")

	// ErrNonPositiveMaximum is returned when a curve's maximum value is zero or
	// negative, so its order of magnitude is undefined.
	ErrNonPositiveMaximum = errors.New("curve maximum is not positive")
)

// CurveError attaches the offending curve name to a clustering error.
type CurveError struct {
	Name string
	Err  error
}

func (e *CurveError) Error() string {
	return fmt.Sprintf("curve %q: %v", e.Name, e.Err)
}

func (e *CurveError) Unwrap() error {
	return e.Err
}
