package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is wrapped by every *ConfigurationError.
	ErrConfiguration = errors.New("puzzle: invalid configuration")

	// ErrOutOfBounds is returned when a cell lies outside [0, dimension).
	ErrOutOfBounds = errors.New("puzzle: cell out of bounds")

	// ErrEmptyCell is returned by Swap when asked to move the empty cell itself.
	ErrEmptyCell = errors.New("puzzle: cell is empty")

	// ErrStaleMove is returned by Apply when a request no longer ends at the
	// grid's empty cell.
	ErrStaleMove = errors.New("puzzle: move does not end at the empty cell")
)

// ConfigurationError describes a rejected construction parameter.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("puzzle: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrConfiguration.
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func outOfBounds(c Cell, dimension int) error {
	return fmt.Errorf("%w: %v not in [0,%d)", ErrOutOfBounds, c, dimension)
}
