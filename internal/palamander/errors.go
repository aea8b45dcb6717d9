package palamander

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBody indicates a body plan that compiled to no segments.
	ErrEmptyBody = errors.New("palamander: body plan produced no segments")

	// ErrUnknownCreature indicates a catalog name with no entry.
	ErrUnknownCreature = errors.New("palamander: unknown creature")

	// ErrInvalidInterval indicates a negative tick interval.
	ErrInvalidInterval = errors.New("palamander: invalid update interval")

	// ErrNonFinite indicates a segment placed at NaN or Inf.
	ErrNonFinite = errors.New("palamander: non-finite segment position")
)

// TickError wraps an error with the tick it happened on.
type TickError struct {
	Type    string
	Tick    int
	Elapsed float64
	Wrapped error
}

func (e *TickError) Error() string {
	return fmt.Sprintf("%s tick %d (%.0fms): %v", e.Type, e.Tick, e.Elapsed, e.Wrapped)
}

func (e *TickError) Unwrap() error {
	return e.Wrapped
}
