//go:build !nonzero_disabled

package nonzero

import (
	"cmp"
	"fmt"
	"log/slog"

	"github.com/amp-labs/integer-result/compare"
	"github.com/amp-labs/integer-result/errors"
	"github.com/amp-labs/integer-result/outcome"
)

// Value is an integer of type T that is never zero.
// Its zero value is not valid; obtain one through New or MustNew.
type Value[T compare.Integer] struct {
	value T
}

type (
	Int8    = Value[int8]
	Int16   = Value[int16]
	Int32   = Value[int32]
	Int64   = Value[int64]
	Int     = Value[int]
	Uint8   = Value[uint8]
	Uint16  = Value[uint16]
	Uint32  = Value[uint32]
	Uint64  = Value[uint64]
	Uint    = Value[uint]
	Uintptr = Value[uintptr]
)

var (
	_ compare.Ext[Int8]        = Int8{}
	_ compare.Ext[Uintptr]     = Uintptr{}
	_ compare.Cmper[Int64]     = Int64{}
	_ compare.Comparable[Uint] = Uint{}
)

// New returns value as a Value, or errors.ErrZeroValue if it is zero.
func New[T compare.Integer](value T) (Value[T], error) {
	if value == 0 {
		return Value[T]{}, fmt.Errorf("%w: %T", errors.ErrZeroValue, value)
	}

	return Value[T]{value: value}, nil
}

// MustNew is like New but panics if value is zero.
// Use this only for values known to be non-zero, such as constants.
func MustNew[T compare.Integer](value T) Value[T] {
	v, err := New(value)
	if err != nil {
		panic(err)
	}

	return v
}

// Get returns the underlying integer.
func (v Value[T]) Get() T { //nolint:ireturn
	return v.value
}

func (v Value[T]) Cmp(other Value[T]) int {
	return cmp.Compare(v.value, other.value)
}

func (v Value[T]) LessThan(target Value[T]) outcome.Of[Value[T]] {
	return compare.LessThanBy(v, target)
}

func (v Value[T]) EqualTo(target Value[T]) outcome.Of[Value[T]] {
	return compare.EqualToBy(v, target)
}

func (v Value[T]) GreaterThan(target Value[T]) outcome.Of[Value[T]] {
	return compare.GreaterThanBy(v, target)
}

func (v Value[T]) Equals(other Value[T]) bool {
	return v.value == other.value
}

func (v Value[T]) String() string {
	return fmt.Sprint(v.value)
}

func (v Value[T]) LogValue() slog.Value {
	return slog.AnyValue(v.value)
}
