// Package errors holds the sentinel errors shared across the module.
package errors

import "errors"

var (
	// ErrPredicateNotHeld is wrapped by the error form of a failed outcome.
	ErrPredicateNotHeld = errors.New("comparison did not hold")

	// ErrZeroValue is returned when a non-zero integer is constructed from zero.
	ErrZeroValue = errors.New("value must be non-zero")
)
