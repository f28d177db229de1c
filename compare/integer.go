package compare

import (
	"github.com/amp-labs/integer-result/outcome"
	"golang.org/x/exp/constraints"
)

// Integer permits every signed and unsigned integer type, including named
// types whose underlying type is an integer.
type Integer interface {
	constraints.Integer
}

// LessThan returns Success(receiver) if receiver < target, else Failure(receiver).
func LessThan[T Integer](receiver, target T) outcome.Of[T] {
	return outcome.FromBool(receiver < target, receiver)
}

// EqualTo returns Success(receiver) if receiver == target, else Failure(receiver).
func EqualTo[T Integer](receiver, target T) outcome.Of[T] {
	return outcome.FromBool(receiver == target, receiver)
}

// GreaterThan returns Success(receiver) if receiver > target, else Failure(receiver).
func GreaterThan[T Integer](receiver, target T) outcome.Of[T] {
	return outcome.FromBool(receiver > target, receiver)
}
