// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"

	"github.com/michaelmacinnis/rational/pkg/rational"
)

func relation[N rational.Number](op func(a, b rational.T[N]) bool) Action[N] {
	return func(c *Context[N]) {
		v := c.Stack.Peek(2)

		fmt.Fprintln(c.Out, op(v[0], v[1]))
	}
}
