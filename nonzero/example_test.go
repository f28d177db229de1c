//go:build !nonzero_disabled

package nonzero_test

import (
	"fmt"

	"github.com/amp-labs/integer-result/nonzero"
)

func ExampleNew() {
	if _, err := nonzero.New[uint8](0); err != nil {
		fmt.Println(err)
	}

	n, _ := nonzero.New[int32](5)

	fmt.Println(n.GreaterThan(nonzero.MustNew[int32](-1)))
	// Output:
	// value must be non-zero: uint8
	// Success(5)
}
