// Package outcome provides a two-armed result type whose arms both carry a value.
// Unlike an error-carrying result, a failed Of still holds the value it was built
// from, so callers never lose the input when a check does not pass.
package outcome

import (
	"fmt"
	"log/slog"

	"github.com/amp-labs/integer-result/errors"
)

// Of holds exactly one value, tagged as either a success or a failure.
// The zero value is a failure holding the zero value of T.
type Of[T any] struct {
	value T
	ok    bool
}

// Success returns an outcome in the success arm.
func Success[T any](value T) Of[T] {
	return Of[T]{value: value, ok: true}
}

// Failure returns an outcome in the failure arm.
func Failure[T any](value T) Of[T] {
	return Of[T]{value: value}
}

// FromBool returns Success(value) when ok is true and Failure(value) otherwise.
func FromBool[T any](ok bool, value T) Of[T] {
	return Of[T]{value: value, ok: ok}
}

func (o Of[T]) IsSuccess() bool {
	return o.ok
}

func (o Of[T]) IsFailure() bool {
	return !o.ok
}

// Value returns the carried value regardless of the arm.
func (o Of[T]) Value() T { //nolint:ireturn
	return o.value
}

// Get returns the carried value and whether the outcome is a success.
func (o Of[T]) Get() (T, bool) { //nolint:ireturn
	return o.value, o.ok
}

// Success returns the value and true if the outcome is in the success arm.
func (o Of[T]) Success() (T, bool) { //nolint:ireturn
	if o.ok {
		return o.value, true
	}

	var zero T

	return zero, false
}

// Failure returns the value and true if the outcome is in the failure arm.
func (o Of[T]) Failure() (T, bool) { //nolint:ireturn
	if !o.ok {
		return o.value, true
	}

	var zero T

	return zero, false
}

// GetOrElse returns the value on success, or defaultValue on failure.
func (o Of[T]) GetOrElse(defaultValue T) T { //nolint:ireturn
	if o.ok {
		return o.value
	}

	return defaultValue
}

// Err returns nil on success. On failure it returns an error wrapping
// errors.ErrPredicateNotHeld whose message includes the carried value.
func (o Of[T]) Err() error {
	if o.ok {
		return nil
	}

	return fmt.Errorf("%w: %v", errors.ErrPredicateNotHeld, o.value)
}

// String returns "Success(v)" or "Failure(v)".
func (o Of[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Success(%v)", o.value)
	}

	return fmt.Sprintf("Failure(%v)", o.value)
}

// LogValue renders the outcome as a group so it can be passed straight to slog.
func (o Of[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("success", o.ok),
		slog.Any("value", o.value),
	)
}

// Map applies f to the carried value and keeps the arm.
func Map[A, B any](o Of[A], f func(A) B) Of[B] {
	return Of[B]{value: f(o.value), ok: o.ok}
}

// Fold collapses the outcome by calling onSuccess or onFailure with the carried value.
func Fold[T, R any](o Of[T], onSuccess, onFailure func(T) R) R { //nolint:ireturn
	if o.ok {
		return onSuccess(o.value)
	}

	return onFailure(o.value)
}
