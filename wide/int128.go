// Package wide provides 128-bit signed and unsigned integers.
//
// Both types order themselves through a Cmp method, so they work with
// compare.LessThanBy, compare.EqualToBy and compare.GreaterThanBy.
package wide

import (
	"math"
	"math/big"
)

// Int128 is a signed 128-bit integer in two's complement form.
// Hi holds the upper 64 bits, including the sign bit.
type Int128 struct {
	Hi int64
	Lo uint64
}

//nolint:gochecknoglobals
var (
	MinInt128 = Int128{Hi: math.MinInt64, Lo: 0}
	MaxInt128 = Int128{Hi: math.MaxInt64, Lo: math.MaxUint64}
)

// Int128From64 sign-extends v to 128 bits.
func Int128From64(v int64) Int128 {
	if v < 0 {
		return Int128{Hi: -1, Lo: uint64(v)}
	}

	return Int128{Hi: 0, Lo: uint64(v)}
}

// Cmp returns -1, 0 or +1 when i is less than, equal to or greater than other.
func (i Int128) Cmp(other Int128) int {
	switch {
	case i.Hi < other.Hi:
		return -1
	case i.Hi > other.Hi:
		return 1
	case i.Lo < other.Lo:
		return -1
	case i.Lo > other.Lo:
		return 1
	default:
		return 0
	}
}

func (i Int128) Equals(other Int128) bool {
	return i == other
}

func (i Int128) IsZero() bool {
	return i.Hi == 0 && i.Lo == 0
}

func (i Int128) IsNegative() bool {
	return i.Hi < 0
}

// Neg returns -i. Negating MinInt128 wraps around to MinInt128.
func (i Int128) Neg() Int128 {
	lo := ^i.Lo + 1
	hi := ^i.Hi

	if lo == 0 {
		hi++
	}

	return Int128{Hi: hi, Lo: lo}
}

// Big returns i as a big.Int.
func (i Int128) Big() *big.Int {
	b := new(big.Int).SetInt64(i.Hi)
	b.Lsh(b, 64)

	return b.Add(b, new(big.Int).SetUint64(i.Lo))
}

func (i Int128) String() string {
	return i.Big().String()
}
