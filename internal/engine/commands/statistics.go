// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/rational/internal/logger"
	"github.com/michaelmacinnis/rational/pkg/rational"
)

func sum[N rational.Number](c *Context[N]) {
	v := c.Stack.Values()

	c.Stack.Replace([]rational.T[N]{rational.Sum(v)})
}

func mean[N rational.Number](c *Context[N]) {
	v := c.Stack.Values()

	if len(v) > 0 {
		logger.Debugf("sum is: %s", rational.Sum(v))
	}

	c.Stack.Replace([]rational.T[N]{rational.Mean(v)})
}

// Median needs sorted values. The stack order is left to the user.
func median[N rational.Number](c *Context[N]) {
	v := c.Stack.Values()

	rational.Sort(v)

	logger.Debugf("median of %d sorted values %v", len(v), v)

	c.Stack.Replace([]rational.T[N]{rational.Median(v)})
}

func sortValues[N rational.Number](c *Context[N]) {
	v := c.Stack.Values()

	rational.Sort(v)

	c.Stack.Replace(v)
}
