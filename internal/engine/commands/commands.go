// Released under an MIT license. See LICENSE.

// Package commands provides the calculator's named operations.
package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/rational/internal/engine/stack"
	"github.com/michaelmacinnis/rational/pkg/rational"
)

// Context is what a command operates on.
type Context[N rational.Number] struct {
	Stack    *stack.T[N]
	Prompter rational.Prompter
	Out      io.Writer

	// Rest holds the tokens following the command on the same line.
	// A command that takes arguments consumes them by shortening Rest.
	Rest []string

	// Quit is set by the q command.
	Quit bool
}

// Action is a command implementation.
type Action[N rational.Number] func(c *Context[N])

//nolint:gochecknoglobals
var descriptions = map[string]string{
	"+":      "replace the top two values with their componentwise sum",
	"-":      "replace the top two values with their componentwise difference",
	"*":      "replace the top two values with their product",
	"/":      "replace the top two values with their componentwise quotient",
	"abs":    "replace the top value with its absolute value",
	"neg":    "replace the top value with its negation",
	"==":     "print whether the top two values are equal",
	"!=":     "print whether the top two values are not equal",
	"<":      "print whether the second value is less than the top value",
	">":      "print whether the second value is greater than the top value",
	"<=":     "print whether the second value is at most the top value",
	">=":     "print whether the second value is at least the top value",
	"sum":    "replace all values with their componentwise sum",
	"mean":   "replace all values with their mean",
	"median": "replace all values with their median",
	"sort":   "sort the stack, smallest value deepest",
	"p":      "print the top value",
	"f":      "print all values, top first",
	"c":      "clear the stack",
	"d":      "duplicate the top value",
	"r":      "swap the top two values",
	"x":      "drop the top value",
	"read":   "prompt for a numerator and denominator and push the result",
	"help":   "list commands, or those matching a glob pattern",
	"q":      "quit",
}

// Table returns the command implementations for component type N.
func Table[N rational.Number]() map[string]Action[N] {
	return map[string]Action[N]{
		"+":      binary(rational.Add[N]),
		"-":      binary(rational.Sub[N]),
		"*":      binary(rational.Mul[N]),
		"/":      binary(rational.Quo[N]),
		"abs":    unary(rational.Abs[N]),
		"neg":    unary(rational.Neg[N]),
		"==":     relation(rational.T[N].Equal),
		"!=":     relation(rational.T[N].NotEqual),
		"<":      relation(rational.T[N].Less),
		">":      relation(rational.T[N].Greater),
		"<=":     relation(rational.T[N].LessEqual),
		">=":     relation(rational.T[N].GreaterEqual),
		"sum":    sum[N],
		"mean":   mean[N],
		"median": median[N],
		"sort":   sortValues[N],
		"p":      printTop[N],
		"f":      printAll[N],
		"c":      clearStack[N],
		"d":      duplicate[N],
		"r":      swap[N],
		"x":      drop[N],
		"read":   read[N],
		"help":   help[N],
		"q":      quit[N],
	}
}

// Names returns the command names in sorted order.
func Names() []string {
	names := make([]string, 0, len(descriptions))
	for name := range descriptions {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func help[N rational.Number](c *Context[N]) {
	patterns := c.Rest
	c.Rest = nil

	if len(patterns) == 0 {
		patterns = []string{"*"}
	}

	for _, name := range Names() {
		for _, pattern := range patterns {
			ok, err := adapted.Match(pattern, name)
			if err != nil {
				panic(err.Error())
			}

			if ok {
				fmt.Fprintf(c.Out, "%-8s %s\n", name, descriptions[name])

				break
			}
		}
	}
}

func quit[N rational.Number](c *Context[N]) {
	c.Quit = true
}
