// Released under an MIT license. See LICENSE.

package rational

import (
	"fmt"
	"math/big"
)

// Rat returns the value of r as a *big.Rat.
func (r T[N]) Rat() *big.Rat {
	if fractional[N]() {
		n := new(big.Rat).SetFloat64(float64(r.num))
		d := new(big.Rat).SetFloat64(float64(r.den))

		return n.Quo(n, d)
	}

	return big.NewRat(int64(r.num), int64(r.den))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t T[int64]

	// The rational type is a stringer.
	_ = fmt.Stringer(t)

	// The rational type can be viewed as a *big.Rat.
	_ = interface{ Rat() *big.Rat }(t)
}
