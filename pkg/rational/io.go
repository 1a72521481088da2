// Released under an MIT license. See LICENSE.

package rational

import (
	"fmt"
	"strconv"
	"reflect"
	"strings"
)

const (
	// NumeratorPrompt is shown before the numerator is read by Input.
	NumeratorPrompt = "Enter a numerator >"

	// DenominatorPrompt is shown before the denominator is read by Input.
	DenominatorPrompt = "Enter a denominator (cannot be zero) >"
)

// Prompter shows a prompt and returns the line entered in response.
// A *liner.State is a Prompter.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// String returns r as "num/den".
func (r T[N]) String() string {
	return format(r.num) + "/" + format(r.den)
}

// Input reads a numerator and, if that succeeds, a denominator from p.
//
// Each response is one number on its own line. If either is missing or
// malformed, or the denominator is zero, Input returns an error and r is
// left unchanged.
func (r *T[N]) Input(p Prompter) error {
	num, err := p.Prompt(NumeratorPrompt)
	if err != nil {
		return err
	}

	n, err := component[N](num)
	if err != nil {
		return fmt.Errorf("numerator: %w", err)
	}

	den, err := p.Prompt(DenominatorPrompt)
	if err != nil {
		return err
	}

	d, err := component[N](den)
	if err != nil {
		return fmt.Errorf("denominator: %w", err)
	}

	return r.set(n, d)
}

// SetStrings sets r to num/den after converting both strings. On error r
// is left unchanged.
func (r *T[N]) SetStrings(num, den string) error {
	n, err := component[N](num)
	if err != nil {
		return fmt.Errorf("numerator: %w", err)
	}

	d, err := component[N](den)
	if err != nil {
		return fmt.Errorf("denominator: %w", err)
	}

	return r.set(n, d)
}

// Parse converts "num/den" or "num" to a rational.
func Parse[N Number](s string) (T[N], error) {
	num, den, found := strings.Cut(s, "/")
	if !found {
		den = "1"
	}

	r := Zero[N]()

	err := r.SetStrings(num, den)
	if err != nil {
		return T[N]{}, err
	}

	return r, nil
}

func (r *T[N]) set(num, den N) error {
	if den == 0 {
		return ErrZeroDenominator
	}

	r.Assign(num, den)

	return nil
}

func bits[N Number]() int {
	var n N

	return reflect.TypeOf(n).Bits()
}

func component[N Number](s string) (N, error) {
	s = strings.TrimSpace(s)

	if fractional[N]() {
		f, err := strconv.ParseFloat(s, bits[N]())
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrSyntax, err)
		}

		if !finite(N(f)) {
			return 0, fmt.Errorf("%w: %w: %q", ErrSyntax, ErrNotFinite, s)
		}

		return N(f), nil
	}

	i, err := strconv.ParseInt(s, 10, bits[N]())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	return N(i), nil
}

func format[N Number](n N) string {
	if fractional[N]() {
		return strconv.FormatFloat(float64(n), 'g', -1, bits[N]())
	}

	return strconv.FormatInt(int64(n), 10)
}
