package swipedeck

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user backed out of a component (B / Escape /
	// window closed). This is a normal flow control error, not an
	// infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrNoOptions is returned by prompts called without any options.
	ErrNoOptions = errors.New("prompt has no options")
)

// InfrastructureError represents a framework-level failure (SDL init,
// missing font, texture upload). The deck state itself never fails; these
// are errors the consuming application cannot reasonably recover from.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "render_card")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("swipedeck: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("swipedeck: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
