// Released under an MIT license. See LICENSE.

package rational

import "math"

// Number is the set of component types a rational can be built from.
//
// Unsigned types cannot hold the negated numerator that normalization
// produces, and int8 is left out along with them because it is a character
// type in spirit. Go's rune is an alias for int32 and is admitted as such.
type Number interface {
	~int | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

func abs[N Number](n N) N {
	if n < 0 {
		return -n
	}

	return n
}

// fractional reports whether N has a fractional part (a float type).
func fractional[N Number]() bool {
	var half N = 1

	half /= 2

	return half != 0
}

func finite[N Number](n N) bool {
	if !fractional[N]() {
		return true
	}

	f := float64(n)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// gcd expects non-negative operands. gcd(0, n) is n.
func gcd[N Number](m, n N) N {
	for n != 0 {
		m, n = n, rem(m, n)
	}

	return m
}

func rem[N Number](m, n N) N {
	if fractional[N]() {
		return N(math.Mod(float64(m), float64(n)))
	}

	return m - (m/n)*n
}
