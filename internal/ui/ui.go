// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the calculator.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/michaelmacinnis/rational/internal/engine"
	"github.com/michaelmacinnis/rational/internal/logger"
	"github.com/michaelmacinnis/rational/internal/system/history"
	"github.com/michaelmacinnis/rational/pkg/rational"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process lines.
type Evaluator interface {
	Evaluate(line string) error
}

// Run prompts for lines and sends them to e until input ends or e quits.
// Evaluation errors are written to errs and do not stop Run. The number
// of lines that failed is returned along with any read error.
func Run(e Evaluator, p rational.Prompter, prompt string, errs io.Writer) (int, error) {
	failed := 0

	for {
		line, err := p.Prompt(prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			return failed, nil
		default:
			return failed, err
		}

		err = e.Evaluate(line)
		if errors.Is(err, engine.ErrQuit) {
			return failed, nil
		}

		if err != nil {
			failed++

			fmt.Fprintf(errs, "rational: %v\n", err)
		}
	}
}

// Lines is a Prompter that reads lines from an io.Reader. Prompts are
// written to w unless w is nil.
type Lines struct {
	scanner *bufio.Scanner
	w       io.Writer
}

// NewLines creates a Lines reading from r.
func NewLines(r io.Reader, w io.Writer) *Lines {
	return &Lines{scanner: bufio.NewScanner(r), w: w}
}

// Prompt writes prompt and returns the next line without its newline.
func (l *Lines) Prompt(prompt string) (string, error) {
	if l.w != nil {
		_, err := io.WriteString(l.w, prompt)
		if err != nil {
			return "", err
		}
	}

	if l.scanner.Scan() {
		return l.scanner.Text(), nil
	}

	if err := l.scanner.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

// Editor is a Prompter backed by a liner line editor.
type Editor struct {
	*liner.State

	history bool
}

// NewEditor creates an Editor that completes words and, if history is
// true, loads and saves the history file.
func NewEditor(words []string, history bool) *Editor {
	cli := liner.NewLiner()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(Completer(words))

	e := &Editor{State: cli, history: history}

	if history {
		e.load()
	}

	return e
}

// Prompt reads a line and adds it to the history.
func (e *Editor) Prompt(prompt string) (string, error) {
	line, err := e.State.Prompt(prompt)
	if err == nil && strings.TrimSpace(line) != "" {
		e.AppendHistory(line)
	}

	return line, err
}

// Close saves the history and restores the terminal.
func (e *Editor) Close() error {
	if e.history {
		err := history.Save(e.WriteHistory)
		if err != nil {
			logger.Errorf("saving history: %v", err)
		}
	}

	return e.State.Close()
}

func (e *Editor) load() {
	err := history.Load(e.ReadHistory)
	if err != nil {
		logger.Errorf("loading history: %v", err)
	}
}

// Completer returns a liner.WordCompleter that completes the word under
// the cursor from words.
func Completer(words []string) liner.WordCompleter {
	return func(line string, pos int) (head string, completions []string, tail string) {
		head = line[:pos]
		tail = line[pos:]

		start := strings.LastIndexAny(head, " \t") + 1
		word := head[start:]
		head = head[:start]

		for _, w := range words {
			if strings.HasPrefix(w, word) {
				completions = append(completions, w)
			}
		}

		return head, completions, tail
	}
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	// Lines is a prompter.
	_ = rational.Prompter(&Lines{})

	// Editor is a prompter.
	_ = rational.Prompter(&Editor{})
}
