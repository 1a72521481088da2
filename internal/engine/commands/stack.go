// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/michaelmacinnis/rational/pkg/rational"
)

func printTop[N rational.Number](c *Context[N]) {
	fmt.Fprintln(c.Out, c.Stack.Peek(1)[0])
}

func printAll[N rational.Number](c *Context[N]) {
	v := c.Stack.Values()

	for i := len(v) - 1; i >= 0; i-- {
		fmt.Fprintln(c.Out, v[i])
	}
}

func clearStack[N rational.Number](c *Context[N]) {
	c.Stack.Clear()
}

func duplicate[N rational.Number](c *Context[N]) {
	c.Stack.Push(c.Stack.Peek(1)[0])
}

func swap[N rational.Number](c *Context[N]) {
	b := c.Stack.Pop()
	a := c.Stack.Pop()

	c.Stack.Push(b)
	c.Stack.Push(a)
}

func drop[N rational.Number](c *Context[N]) {
	c.Stack.Pop()
}
