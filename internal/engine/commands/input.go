// Released under an MIT license. See LICENSE.

package commands

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/rational/internal/logger"
	"github.com/michaelmacinnis/rational/pkg/rational"
)

// Read keeps asking until a valid rational is entered or reading fails.
func read[N rational.Number](c *Context[N]) {
	for {
		fmt.Fprintln(c.Out, "Enter a rational number (numerator and denominator)...")

		r := rational.Zero[N]()

		err := r.Input(c.Prompter)
		if err == nil {
			c.Stack.Push(r)

			return
		}

		if !errors.Is(err, rational.ErrSyntax) && !errors.Is(err, rational.ErrZeroDenominator) {
			panic(err)
		}

		logger.Verbosef("rejected input: %v", err)

		fmt.Fprintln(c.Out, "Error on input - try again...")
	}
}
