//go:build !nonzero_disabled

package nonzero

import (
	"fmt"

	"github.com/amp-labs/integer-result/compare"
	"github.com/amp-labs/integer-result/errors"
	"github.com/amp-labs/integer-result/outcome"
	"github.com/amp-labs/integer-result/wide"
)

// Int128 is a wide.Int128 that is never zero.
type Int128 struct {
	value wide.Int128
}

// Uint128 is a wide.Uint128 that is never zero.
type Uint128 struct {
	value wide.Uint128
}

var (
	_ compare.Ext[Int128]  = Int128{}
	_ compare.Ext[Uint128] = Uint128{}
)

// NewInt128 returns value as an Int128, or errors.ErrZeroValue if it is zero.
func NewInt128(value wide.Int128) (Int128, error) {
	if value.IsZero() {
		return Int128{}, fmt.Errorf("%w: %T", errors.ErrZeroValue, value)
	}

	return Int128{value: value}, nil
}

// MustNewInt128 is like NewInt128 but panics if value is zero.
func MustNewInt128(value wide.Int128) Int128 {
	v, err := NewInt128(value)
	if err != nil {
		panic(err)
	}

	return v
}

func (v Int128) Get() wide.Int128 {
	return v.value
}

func (v Int128) Cmp(other Int128) int {
	return v.value.Cmp(other.value)
}

func (v Int128) LessThan(target Int128) outcome.Of[Int128] {
	return compare.LessThanBy(v, target)
}

func (v Int128) EqualTo(target Int128) outcome.Of[Int128] {
	return compare.EqualToBy(v, target)
}

func (v Int128) GreaterThan(target Int128) outcome.Of[Int128] {
	return compare.GreaterThanBy(v, target)
}

func (v Int128) Equals(other Int128) bool {
	return v.value.Equals(other.value)
}

func (v Int128) String() string {
	return v.value.String()
}

// NewUint128 returns value as a Uint128, or errors.ErrZeroValue if it is zero.
func NewUint128(value wide.Uint128) (Uint128, error) {
	if value.IsZero() {
		return Uint128{}, fmt.Errorf("%w: %T", errors.ErrZeroValue, value)
	}

	return Uint128{value: value}, nil
}

// MustNewUint128 is like NewUint128 but panics if value is zero.
func MustNewUint128(value wide.Uint128) Uint128 {
	v, err := NewUint128(value)
	if err != nil {
		panic(err)
	}

	return v
}

func (v Uint128) Get() wide.Uint128 {
	return v.value
}

func (v Uint128) Cmp(other Uint128) int {
	return v.value.Cmp(other.value)
}

func (v Uint128) LessThan(target Uint128) outcome.Of[Uint128] {
	return compare.LessThanBy(v, target)
}

func (v Uint128) EqualTo(target Uint128) outcome.Of[Uint128] {
	return compare.EqualToBy(v, target)
}

func (v Uint128) GreaterThan(target Uint128) outcome.Of[Uint128] {
	return compare.GreaterThanBy(v, target)
}

func (v Uint128) Equals(other Uint128) bool {
	return v.value.Equals(other.value)
}

func (v Uint128) String() string {
	return v.value.String()
}
