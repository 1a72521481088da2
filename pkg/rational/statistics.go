// Released under an MIT license. See LICENSE.

package rational

// Sum adds the values in c, in order, to 0/1 using the compound Add.
func Sum[N Number](c []T[N]) T[N] {
	sum := Zero[N]()

	for _, r := range c {
		sum.Add(r)
	}

	return sum
}

// Mean returns Sum(c) divided by the number of values in c.
// It panics with ErrEmpty if c is empty.
func Mean[N Number](c []T[N]) T[N] {
	if len(c) == 0 {
		panic(ErrEmpty)
	}

	return Quo(Sum(c), Int(N(len(c))))
}

// Median returns the middle value of c, which must already be sorted. For
// an even number of values the two middle values are added and divided by
// 2. It panics with ErrEmpty if c is empty. The values in c are not changed.
func Median[N Number](c []T[N]) T[N] {
	n := len(c)
	if n == 0 {
		panic(ErrEmpty)
	}

	m := n / 2

	if n%2 == 1 {
		return c[m]
	}

	return Quo(Add(c[m-1], c[m]), Int[N](2))
}
