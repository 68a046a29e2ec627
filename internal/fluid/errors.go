package fluid

import (
	"errors"
	"fmt"
)

// Domain errors for grid operations.
var (
	// ErrGridSize indicates a grid that cannot be allocated: a dimension below
	// one or more cells than MaxCells.
	ErrGridSize = errors.New("fluid: grid dimensions cannot be allocated")

	// ErrReleased indicates use of a grid after Release.
	ErrReleased = errors.New("fluid: grid already released")
)

// SizeError wraps ErrGridSize with the requested dimensions.
type SizeError struct {
	Width, Height int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%v (%dx%d, limit %d cells)", ErrGridSize, e.Width, e.Height, MaxCells)
}

func (e *SizeError) Unwrap() error {
	return ErrGridSize
}
