// Released under an MIT license. See LICENSE.

// Package stack provides the calculator's operand stack.
package stack

import (
	"github.com/michaelmacinnis/rational/internal/common/validate"
	"github.com/michaelmacinnis/rational/pkg/rational"
)

// T (stack) holds rationals, most recently pushed last.
type T[N rational.Number] struct {
	values []rational.T[N]
}

// New creates an empty stack.
func New[N rational.Number]() *T[N] {
	return &T[N]{}
}

func (s *T[N]) Push(r rational.T[N]) {
	s.values = append(s.values, r)
}

// Pop removes and returns the top value. It panics if s is empty.
func (s *T[N]) Pop() rational.T[N] {
	validate.Depth(len(s.values), 1)

	r := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]

	return r
}

// Peek returns the top n values, deepest first, without removing them.
func (s *T[N]) Peek(n int) []rational.T[N] {
	validate.Depth(len(s.values), n)

	return s.values[len(s.values)-n:]
}

func (s *T[N]) Len() int {
	return len(s.values)
}

func (s *T[N]) Clear() {
	s.values = s.values[:0]
}

// Values returns a copy of the stack, deepest first.
func (s *T[N]) Values() []rational.T[N] {
	return append([]rational.T[N](nil), s.values...)
}

// Replace discards the stack and pushes values in order.
func (s *T[N]) Replace(values []rational.T[N]) {
	s.values = append(s.values[:0], values...)
}
