// Released under an MIT license. See LICENSE.

// Package validate panics with a counted message when too few values are
// available.
package validate

import (
	"fmt"
)

// Depth panics unless have is at least want.
func Depth(have, want int) {
	if have < want {
		s := Count(want, "value", "s")
		panic(fmt.Sprintf("expected %s, stack has %d", s, have))
	}
}

// Count returns n followed by label, pluralized with p unless n is 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
