package compare

import (
	"math"
	"strings"
	"testing"

	"github.com/amp-labs/integer-result/outcome"
	"github.com/stretchr/testify/assert"
)

// version orders itself through Cmp.
type version struct {
	major, minor int
}

func (v version) Cmp(other version) int {
	if v.major != other.major {
		return v.major - other.major
	}

	return v.minor - other.minor
}

func TestCmpVariants(t *testing.T) {
	t.Parallel()

	v1 := version{major: 1, minor: 2}
	v2 := version{major: 1, minor: 10}

	assert.Equal(t, outcome.Success(v1), LessThanBy(v1, v2))
	assert.Equal(t, outcome.Failure(v2), LessThanBy(v2, v1))
	assert.Equal(t, outcome.Success(v1), EqualToBy(v1, v1))
	assert.Equal(t, outcome.Failure(v1), EqualToBy(v1, v2))
	assert.Equal(t, outcome.Success(v2), GreaterThanBy(v2, v1))
	assert.Equal(t, outcome.Failure(v1), GreaterThanBy(v1, v1))
}

func TestComparator_By(t *testing.T) {
	t.Parallel()

	byLength := By(func(a, b string) int {
		return len(a) - len(b)
	})

	assert.Equal(t, outcome.Success("ab"), byLength.LessThan("ab", "abc"))
	assert.Equal(t, outcome.Success("ab"), byLength.EqualTo("ab", "cd"))
	assert.Equal(t, outcome.Failure("ab"), byLength.GreaterThan("ab", "cd"))

	folded := By(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	assert.True(t, folded.EqualTo("Go", "gO").IsSuccess())
}

func TestComparator_Natural(t *testing.T) {
	t.Parallel()

	c := Natural[int64]()

	for _, pair := range [][2]int64{{1, 2}, {1, 0}, {1, 1}, {math.MinInt64, math.MaxInt64}, {math.MaxInt64, -1}} {
		a, b := pair[0], pair[1]

		assert.Equal(t, LessThan(a, b), c.LessThan(a, b))
		assert.Equal(t, EqualTo(a, b), c.EqualTo(a, b))
		assert.Equal(t, GreaterThan(a, b), c.GreaterThan(a, b))
	}
}
