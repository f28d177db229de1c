package wide

import "lukechampine.com/uint128"

// Uint128 is an unsigned 128-bit integer.
type Uint128 = uint128.Uint128

//nolint:gochecknoglobals
var (
	MinUint128 = uint128.Zero
	MaxUint128 = uint128.Max
)

// Uint128From64 widens v to 128 bits.
func Uint128From64(v uint64) Uint128 {
	return uint128.From64(v)
}

// NewUint128 assembles a Uint128 from its high and low words.
func NewUint128(hi, lo uint64) Uint128 {
	return uint128.New(lo, hi)
}
