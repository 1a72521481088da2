// Released under an MIT license. See LICENSE.

package rational

import "slices"

// Equal returns true if r and x have the same numerator and denominator.
// Both are canonical so this is numeric equality.
func (r T[N]) Equal(x T[N]) bool {
	return r.num == x.num && r.den == x.den
}

// NotEqual returns !r.Equal(x).
func (r T[N]) NotEqual(x T[N]) bool {
	return !r.Equal(x)
}

// Less returns true if r < x.
//
// With positive denominators a/b < c/d exactly when a*d < c*b. The
// products are computed in N and may overflow for large components.
func (r T[N]) Less(x T[N]) bool {
	return r.num*x.den < x.num*r.den
}

// Greater returns true if r > x.
func (r T[N]) Greater(x T[N]) bool {
	return x.Less(r)
}

// LessEqual returns true if r <= x.
func (r T[N]) LessEqual(x T[N]) bool {
	return !r.Greater(x)
}

// GreaterEqual returns true if r >= x.
func (r T[N]) GreaterEqual(x T[N]) bool {
	return !r.Less(x)
}

// Cmp returns -1, 0 or +1 as r is less than, equal to or greater than x.
func (r T[N]) Cmp(x T[N]) int {
	switch {
	case r.Less(x):
		return -1
	case r.Greater(x):
		return 1
	}

	return 0
}

// Sort sorts c in increasing order.
func Sort[N Number](c []T[N]) {
	slices.SortStableFunc(c, func(a, b T[N]) int {
		return a.Cmp(b)
	})
}
