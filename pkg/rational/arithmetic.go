// Released under an MIT license. See LICENSE.

package rational

// Add sets r to the componentwise sum (r.num+x.num)/(r.den+x.den) and
// returns r.
//
// This is not fraction addition. See the package documentation.
func (r *T[N]) Add(x T[N]) *T[N] {
	r.num += x.num
	r.den += x.den

	r.reduce()

	return r
}

// Sub sets r to the componentwise difference (r.num-x.num)/(r.den-x.den)
// and returns r. It panics if the denominators are equal.
func (r *T[N]) Sub(x T[N]) *T[N] {
	r.num -= x.num
	r.den -= x.den

	r.reduce()

	return r
}

// Mul sets r to the product r*x and returns r.
func (r *T[N]) Mul(x T[N]) *T[N] {
	r.num *= x.num
	r.den *= x.den

	r.reduce()

	return r
}

// Quo sets r to the componentwise quotient (r.num/x.num)/(r.den/x.den) and
// returns r. For integer components both divisions truncate.
//
// Quo panics with ErrDivisionByZero if x is zero, and with
// ErrZeroDenominator if the new denominator truncates to zero.
func (r *T[N]) Quo(x T[N]) *T[N] {
	if x.num == 0 {
		panic(ErrDivisionByZero)
	}

	r.num /= x.num
	r.den /= x.den

	r.reduce()

	return r
}

// Add returns a.Add(b) without modifying a.
func Add[N Number](a, b T[N]) T[N] {
	return *a.Add(b)
}

// Sub returns a.Sub(b) without modifying a.
func Sub[N Number](a, b T[N]) T[N] {
	return *a.Sub(b)
}

// Mul returns a.Mul(b) without modifying a.
func Mul[N Number](a, b T[N]) T[N] {
	return *a.Mul(b)
}

// Quo returns a.Quo(b) without modifying a.
func Quo[N Number](a, b T[N]) T[N] {
	return *a.Quo(b)
}

// Abs returns the absolute value of r.
func Abs[N Number](r T[N]) T[N] {
	return New(abs(r.num), r.den)
}

// Neg returns -r.
func Neg[N Number](r T[N]) T[N] {
	return New(-r.num, r.den)
}
