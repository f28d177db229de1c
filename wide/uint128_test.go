package wide

import (
	"math"
	"testing"

	"github.com/amp-labs/integer-result/compare"
	"github.com/amp-labs/integer-result/outcome"
	"github.com/stretchr/testify/assert"
)

func TestUint128_Bounds(t *testing.T) {
	t.Parallel()

	assert.True(t, MinUint128.IsZero())
	assert.Equal(t, "0", MinUint128.String())
	assert.Equal(t, "340282366920938463463374607431768211455", MaxUint128.String())
	assert.Equal(t, NewUint128(math.MaxUint64, math.MaxUint64), MaxUint128)
}

func TestUint128_Construct(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", Uint128From64(42).String())
	assert.Equal(t, "18446744073709551616", NewUint128(1, 0).String())
}

func TestUint128_Operations(t *testing.T) {
	t.Parallel()

	one := Uint128From64(1)
	two := Uint128From64(2)
	high := NewUint128(1, 0)

	assert.Equal(t, outcome.Success(one), compare.LessThanBy(one, two))
	assert.Equal(t, outcome.Failure(one), compare.LessThanBy(one, MinUint128))
	assert.Equal(t, outcome.Success(one), compare.EqualToBy(one, one))
	assert.Equal(t, outcome.Failure(one), compare.EqualToBy(one, two))
	assert.Equal(t, outcome.Success(high), compare.GreaterThanBy(high, Uint128From64(math.MaxUint64)))
	assert.Equal(t, outcome.Failure(MaxUint128), compare.GreaterThanBy(MaxUint128, MaxUint128))
}
