package compare

import "github.com/amp-labs/integer-result/outcome"

// Ext is the capability of classifying a value against a target of type T.
// Every method returns an outcome carrying the receiver's value as a T.
type Ext[T any] interface {
	LessThan(target T) outcome.Of[T]
	EqualTo(target T) outcome.Of[T]
	GreaterThan(target T) outcome.Of[T]
}

// Int gives a built-in integer the Ext methods, since Go does not allow
// methods on predeclared types.
type Int[T Integer] struct {
	value T
}

var (
	_ Ext[int8]    = Int[int8]{}
	_ Ext[int16]   = Int[int16]{}
	_ Ext[int32]   = Int[int32]{}
	_ Ext[int64]   = Int[int64]{}
	_ Ext[int]     = Int[int]{}
	_ Ext[uint8]   = Int[uint8]{}
	_ Ext[uint16]  = Int[uint16]{}
	_ Ext[uint32]  = Int[uint32]{}
	_ Ext[uint64]  = Int[uint64]{}
	_ Ext[uint]    = Int[uint]{}
	_ Ext[uintptr] = Int[uintptr]{}
)

// Wrap returns value as an Int.
func Wrap[T Integer](value T) Int[T] {
	return Int[T]{value: value}
}

func (i Int[T]) Get() T { //nolint:ireturn
	return i.value
}

func (i Int[T]) LessThan(target T) outcome.Of[T] {
	return LessThan(i.value, target)
}

func (i Int[T]) EqualTo(target T) outcome.Of[T] {
	return EqualTo(i.value, target)
}

func (i Int[T]) GreaterThan(target T) outcome.Of[T] {
	return GreaterThan(i.value, target)
}

func (i Int[T]) Equals(other T) bool {
	return i.value == other
}
