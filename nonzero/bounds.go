//go:build !nonzero_disabled

package nonzero

import (
	"unsafe"

	"github.com/amp-labs/integer-result/compare"
)

// Min returns the smallest non-zero value of T: the type minimum for signed
// types and 1 for unsigned types.
func Min[T compare.Integer]() Value[T] {
	lo, _ := bounds[T]()
	if lo == 0 {
		return Value[T]{value: 1}
	}

	return Value[T]{value: lo}
}

// Max returns the largest value of T.
func Max[T compare.Integer]() Value[T] {
	_, hi := bounds[T]()

	return Value[T]{value: hi}
}

// One returns the value 1 of T.
func One[T compare.Integer]() Value[T] {
	return Value[T]{value: 1}
}

func bounds[T compare.Integer]() (T, T) {
	var zero T

	bits := unsafe.Sizeof(zero) * 8

	if ^zero < 0 {
		hi := T(1)<<(bits-1) - 1

		return -hi - 1, hi
	}

	return zero, ^zero
}
