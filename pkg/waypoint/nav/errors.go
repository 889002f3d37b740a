package nav

import (
	"errors"
	"fmt"
)

// ErrUnsupported is matched by every error raised because the bound host
// lacks an optional capability that cannot be approximated.
var ErrUnsupported = errors.New("navigation capability not supported by host")

// CapabilityError reports a call to an operation the host does not provide.
type CapabilityError struct {
	Op         string     // Operation that was requested (e.g., "replace")
	Capability Capability // Capability that was missing
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("waypoint: %s: %v", e.Op, ErrUnsupported)
}

func (e *CapabilityError) Unwrap() error {
	return ErrUnsupported
}

func newCapabilityError(op string, c Capability) *CapabilityError {
	return &CapabilityError{Op: op, Capability: c}
}

// IsUnsupported checks if an error was caused by a missing host capability.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}
