package compare

import (
	"cmp"

	"github.com/amp-labs/integer-result/outcome"
)

// Cmper is implemented by types that order themselves, returning a negative
// number, zero or a positive number when the receiver is less than, equal to
// or greater than other.
type Cmper[T any] interface {
	Cmp(other T) int
}

// LessThanBy is LessThan for types ordered by their Cmp method.
func LessThanBy[T Cmper[T]](receiver, target T) outcome.Of[T] {
	return outcome.FromBool(receiver.Cmp(target) < 0, receiver)
}

// EqualToBy is EqualTo for types ordered by their Cmp method.
func EqualToBy[T Cmper[T]](receiver, target T) outcome.Of[T] {
	return outcome.FromBool(receiver.Cmp(target) == 0, receiver)
}

// GreaterThanBy is GreaterThan for types ordered by their Cmp method.
func GreaterThanBy[T Cmper[T]](receiver, target T) outcome.Of[T] {
	return outcome.FromBool(receiver.Cmp(target) > 0, receiver)
}

// Comparator classifies values using a three-way comparison function.
// The function must describe a total order.
type Comparator[T any] struct {
	cmp func(a, b T) int
}

// By returns a Comparator backed by the given three-way comparison function.
func By[T any](cmp func(a, b T) int) Comparator[T] {
	return Comparator[T]{cmp: cmp}
}

// Natural returns the Comparator for the type's built-in order.
func Natural[T Integer]() Comparator[T] {
	return By(cmp.Compare[T])
}

func (c Comparator[T]) LessThan(receiver, target T) outcome.Of[T] {
	return outcome.FromBool(c.cmp(receiver, target) < 0, receiver)
}

func (c Comparator[T]) EqualTo(receiver, target T) outcome.Of[T] {
	return outcome.FromBool(c.cmp(receiver, target) == 0, receiver)
}

func (c Comparator[T]) GreaterThan(receiver, target T) outcome.Of[T] {
	return outcome.FromBool(c.cmp(receiver, target) > 0, receiver)
}
