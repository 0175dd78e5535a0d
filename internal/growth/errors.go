package growth

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidInput indicates an environmental or run parameter outside
	// the caller contract (negative light, negative DIC, non-positive
	// time span or sample count).
	ErrInvalidInput = errors.New("growth: invalid input")

	// ErrInvalidModelState indicates degenerate derived coefficients
	// (Xmax <= 0 or non-finite mu_max) detected before integration.
	ErrInvalidModelState = errors.New("growth: invalid model state")

	// ErrUnstable indicates the adaptive integrator could not meet its
	// accuracy target within the allowed step reductions.
	ErrUnstable = errors.New("growth: numerical instability (step size below minimum)")
)

// InputErrorf wraps ErrInvalidInput with the offending parameter and value.
func InputErrorf(name string, value float64) error {
	return fmt.Errorf("%w: %s = %g", ErrInvalidInput, name, value)
}

// ModelStateErrorf wraps ErrInvalidModelState with the offending coefficient.
func ModelStateErrorf(name string, value float64) error {
	return fmt.Errorf("%w: %s = %g", ErrInvalidModelState, name, value)
}

// SimError carries the integration position where a run failed.
type SimError struct {
	Time    float64
	Sample  int
	Wrapped error
}

func (e *SimError) Error() string {
	return fmt.Sprintf("sample %d (t=%.4f): %v", e.Sample, e.Time, e.Wrapped)
}

func (e *SimError) Unwrap() error {
	return e.Wrapped
}
