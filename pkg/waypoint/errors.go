package waypoint

import (
	"errors"
	"fmt"

	"github.com/waypoint-nav/waypoint/pkg/waypoint/nav"
)

// Sentinel errors for common conditions.
var (
	// ErrUnsupported is returned when the bound host lacks a capability that
	// cannot be approximated, such as replace.
	ErrUnsupported = nav.ErrUnsupported

	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoFont is returned when the default theme has no font_path and no
	// fallback font is installed.
	ErrNoFont = errors.New("no font found; set window.font_path")
)

// InfrastructureError represents a failure of the environment waypoint runs
// in rather than of a navigation request: a window that could not be
// created, a font or message file that could not be read, an input device
// that could not be opened.
//
// Errors reported by the host navigation runtime are never wrapped in one.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_config", "open_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("waypoint: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("waypoint: %s", e.Op)
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

// IsUnsupported checks if an error was caused by a missing host capability.
func IsUnsupported(err error) bool {
	return nav.IsUnsupported(err)
}
