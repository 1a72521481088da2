// Released under an MIT license. See LICENSE.

/*
Rational is a stack calculator for exact fractions.

Numbers are entered as "num/den" or "num" and pushed onto a stack.
Commands pop their operands and push their results:

    1/2 2/3 * p
    2/7 2/5 10/11 4/12 4/8 10/12 mean p
    3/4 9/14 >

Addition, subtraction and division work on numerators and denominators
separately, so "1/2 1/3 + p" prints 2/5. Type "help" for the list of
commands.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/michaelmacinnis/rational/internal/engine"
	"github.com/michaelmacinnis/rational/internal/engine/commands"
	"github.com/michaelmacinnis/rational/internal/logger"
	"github.com/michaelmacinnis/rational/internal/system/config"
	"github.com/michaelmacinnis/rational/internal/system/options"
	"github.com/michaelmacinnis/rational/internal/ui"
	"github.com/michaelmacinnis/rational/pkg/rational"
)

func main() {
	err := options.Parse(os.Args[1:])
	if err != nil {
		fatal(err, 2)
	}

	cfg, err := load()
	if err != nil {
		fatal(err, 2)
	}

	err = configure(cfg)
	if err != nil {
		fatal(err, 2)
	}

	kind := options.Type()
	if kind == "" {
		kind = cfg.Number.Type
	}

	failed := 0

	switch kind {
	case "int":
		failed, err = run[int](cfg)
	case "int16":
		failed, err = run[int16](cfg)
	case "int32":
		failed, err = run[int32](cfg)
	case "int64":
		failed, err = run[int64](cfg)
	case "float32":
		failed, err = run[float32](cfg)
	case "float64":
		failed, err = run[float64](cfg)
	default:
		err = fmt.Errorf("unknown type %q", kind)
	}

	if err != nil {
		fatal(err, 1)
	}

	if failed > 0 && !options.Interactive() {
		os.Exit(1)
	}
}

func configure(cfg *config.Custom) error {
	level, err := logger.Level(cfg.Log.Level)
	if err != nil {
		return err
	}

	switch {
	case options.Debug():
		level = logger.DEBUG
	case options.Verbose():
		level = logger.VERBOSE
	}

	logger.SetLevel(level)
	logger.SetLimiter(cfg.Log.Limiter)

	return logger.SetFilter(cfg.Log.Filter)
}

func fatal(err error, status int) {
	fmt.Fprintf(os.Stderr, "rational: %v\n", err)
	os.Exit(status)
}

func load() (*config.Custom, error) {
	if path := options.Config(); path != "" {
		return config.Initialize(path, true)
	}

	return config.Initialize(config.Path(), false)
}

func run[N rational.Number](cfg *config.Custom) (int, error) {
	stdin := ui.NewLines(os.Stdin, nil)

	if expressions := options.Expressions(); len(expressions) > 0 {
		e := engine.New[N](os.Stdout, stdin)
		lines := ui.NewLines(strings.NewReader(strings.Join(expressions, "\n")), nil)

		return ui.Run(e, lines, "", os.Stderr)
	}

	if !options.Interactive() {
		return ui.Run(engine.New[N](os.Stdout, stdin), stdin, "", os.Stderr)
	}

	editor := ui.NewEditor(commands.Names(), !cfg.REPL.NoHistory)
	defer editor.Close()

	return ui.Run(engine.New[N](os.Stdout, editor), editor, cfg.REPL.Prompt, os.Stderr)
}
