// Released under an MIT license. See LICENSE.

// Package rational provides an exact fraction type built from a pair of
// signed integer (or floating point) components.
//
// Every value handed out by this package is in canonical form: the
// denominator is positive and shares no factor with the numerator, with
// zero represented as 0/1. Equality is therefore structural and ordering
// is computed by cross multiplication.
//
// The compound Add, Sub and Quo operations work componentwise, so
// 1/2 + 1/3 is 2/5 rather than 5/6. This matches the values produced by
// the program this package replaces and is kept for compatibility.
package rational

import (
	"errors"
)

var (
	// ErrZeroDenominator is raised when a zero denominator is supplied.
	ErrZeroDenominator = errors.New("denominator cannot be zero")

	// ErrDivisionByZero is raised when dividing by a value with a zero numerator.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrEmpty is raised by aggregate operations given no values.
	ErrEmpty = errors.New("empty collection")

	// ErrSyntax is wrapped by every parse failure.
	ErrSyntax = errors.New("invalid number")

	// ErrNotFinite is raised when a float component is NaN or infinite.
	ErrNotFinite = errors.New("component is not finite")

	// ErrOverflow is raised when a component cannot be negated.
	ErrOverflow = errors.New("component overflow")
)

// T (rational) is the fraction num/den.
//
// T has value semantics. The zero value is not a valid rational; use Zero,
// Int, New or Try to obtain one.
type T[N Number] struct {
	num N
	den N
}

// Zero returns 0/1.
func Zero[N Number]() T[N] {
	return Int[N](0)
}

// Int returns n/1. It is also how plain numbers are promoted for mixed
// arithmetic, e.g. Quo(r, Int[int](2)).
func Int[N Number](n N) T[N] {
	return New(n, 1)
}

// New returns num/den in canonical form. It panics if den is zero, if a
// float component is not finite, or if den is the most negative value of
// an integer type and so cannot be made positive.
func New[N Number](num, den N) T[N] {
	r := T[N]{num: num, den: den}
	r.reduce()

	return r
}

// Try is like New but returns ErrZeroDenominator instead of panicking.
func Try[N Number](num, den N) (T[N], error) {
	if den == 0 {
		return T[N]{}, ErrZeroDenominator
	}

	return New(num, den), nil
}

// Assign replaces the value of r with num/den. It panics if den is zero.
func (r *T[N]) Assign(num, den N) {
	r.num = num
	r.den = den

	r.reduce()
}

// Num returns the numerator of r. The sign of r is carried here.
func (r T[N]) Num() N {
	return r.num
}

// Den returns the denominator of r. It is always positive.
func (r T[N]) Den() N {
	return r.den
}

func (r *T[N]) reduce() {
	if !finite(r.num) || !finite(r.den) {
		panic(ErrNotFinite)
	}

	if r.den == 0 {
		panic(ErrZeroDenominator)
	}

	if r.den < 0 {
		r.num = -r.num
		r.den = -r.den

		if r.den < 0 {
			panic(ErrOverflow)
		}
	}

	d := gcd(abs(r.num), r.den)

	r.num /= d
	r.den /= d
}
