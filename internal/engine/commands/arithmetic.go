// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/rational/pkg/rational"
)

func binary[N rational.Number](op func(a, b rational.T[N]) rational.T[N]) Action[N] {
	return func(c *Context[N]) {
		b := c.Stack.Pop()
		a := c.Stack.Pop()

		c.Stack.Push(op(a, b))
	}
}

func unary[N rational.Number](op func(r rational.T[N]) rational.T[N]) Action[N] {
	return func(c *Context[N]) {
		c.Stack.Push(op(c.Stack.Pop()))
	}
}
