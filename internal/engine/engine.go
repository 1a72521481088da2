// Released under an MIT license. See LICENSE.

// Package engine evaluates lines of calculator input.
//
// A line is a sequence of white space separated tokens. Each token is
// either a command name or a number ("3/4", "-5", "0.5/2"), which is
// pushed onto the stack.
package engine

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/rational/internal/engine/commands"
	"github.com/michaelmacinnis/rational/internal/engine/stack"
	"github.com/michaelmacinnis/rational/internal/logger"
	"github.com/michaelmacinnis/rational/pkg/rational"
)

var (
	// ErrQuit is returned by Evaluate after the q command.
	ErrQuit = errors.New("quit")

	// ErrUnknown is returned for a token that is neither a command nor a number.
	ErrUnknown = errors.New("unknown command")
)

// T (engine) owns a stack and the commands that operate on it.
type T[N rational.Number] struct {
	context commands.Context[N]
	table   map[string]commands.Action[N]
}

// New creates an engine that writes to out and prompts with p.
func New[N rational.Number](out io.Writer, p rational.Prompter) *T[N] {
	return &T[N]{
		context: commands.Context[N]{
			Stack:    stack.New[N](),
			Prompter: p,
			Out:      out,
		},
		table: commands.Table[N](),
	}
}

// Evaluate runs each token in line. It stops at the first token that
// fails, leaving the stack as it was before that token.
func (e *T[N]) Evaluate(line string) error {
	tokens := strings.Fields(line)

	for len(tokens) > 0 {
		token := tokens[0]

		rest, err := e.apply(token, tokens[1:])
		if err != nil {
			return err
		}

		if e.context.Quit {
			return ErrQuit
		}

		tokens = rest
	}

	return nil
}

// Stack returns a copy of the stack, deepest value first.
func (e *T[N]) Stack() []rational.T[N] {
	return e.context.Stack.Values()
}

func (e *T[N]) apply(token string, rest []string) (remaining []string, err error) {
	saved := e.context.Stack.Values()

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e.context.Stack.Replace(saved)

		err = fmt.Errorf("%s: %w", token, recovered(r))
	}()

	logger.Verbosef("evaluating %s", token)

	action, ok := e.table[token]
	if !ok {
		v, perr := rational.Parse[N](token)
		if errors.Is(perr, rational.ErrZeroDenominator) {
			return nil, fmt.Errorf("%s: %w", token, perr)
		} else if perr != nil {
			logger.Debugf("parse %s: %v", token, perr)

			return nil, fmt.Errorf("%w: %s", ErrUnknown, adapted.CanonicalString(token))
		}

		e.context.Stack.Push(v)

		return rest, nil
	}

	e.context.Rest = rest
	action(&e.context)

	return e.context.Rest, nil
}

func recovered(r interface{}) error {
	switch v := r.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	}

	return fmt.Errorf("%v", r)
}
