// Package compare turns comparisons into outcomes.
//
// LessThan, EqualTo and GreaterThan classify a receiver against a target of the
// same integer type and return an outcome.Of holding the receiver in either arm:
//
//	compare.LessThan(1, 2)     // Success(1)
//	compare.LessThan(1, 0)     // Failure(1)
//	compare.GreaterThan(1, -1) // Success(1)
//
// Types that are not built-in integers gain the same operations through the
// Cmp-based variants (LessThanBy and friends) or a Comparator.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Wrapper types in this module (non-zero integers, 128-bit integers) implement it
// so they can be checked for equality without knowing their representation.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
