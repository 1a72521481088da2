// Released under an MIT license. See LICENSE.

// Package options parses the calculator's command line.
package options

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by --version.
const Version = "rational 0.3.0"

//nolint:gochecknoglobals
var (
	config      string
	debug       bool
	expressions []string
	interactive bool
	kind        string
	verbose     bool
	parser      = &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}
	terminal    = func() bool {
		fd := os.Stdin.Fd()

		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	usage = `rational

Usage:
  rational [-div] [-t TYPE] [-c FILE] [--] [EXPRESSION...]
  rational -h
  rational --version

Arguments:
  EXPRESSION  Evaluated in order, as if entered one per line.

Options:
  -c, --config=FILE      Read settings from FILE instead of ~/.rational.toml.
  -d, --debug            Log at debug level.
  -i, --interactive      Invert interactive mode.
  -t, --type=TYPE        Component type: int, int16, int32, int64, float32
                         or float64.
  -v, --verbose          Log at verbose level.
  -h, --help             Display this help.
  --version              Print rational version.

If stdin is a TTY and no expressions are given, lines are read with an
editor and history. Otherwise lines are read from stdin without prompts.
Use -- before an expression that starts with a negative number.
`
)

// Types lists the accepted component type names.
var Types = []string{"int", "int16", "int32", "int64", "float32", "float64"} //nolint:gochecknoglobals

func Config() string {
	return config
}

func Debug() bool {
	return debug
}

func Expressions() []string {
	return expressions
}

func Interactive() bool {
	return interactive
}

// Type returns the component type name, or "" if none was given.
func Type() string {
	return kind
}

func Verbose() bool {
	return verbose
}

// Parse parses argv (without the program name).
func Parse(argv []string) error {
	if argv == nil {
		// docopt substitutes os.Args for a nil argv.
		argv = []string{}
	}

	opts, err := parser.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	config, _ = opts.String("--config")
	debug, _ = opts.Bool("--debug")
	verbose, _ = opts.Bool("--verbose")

	kind, _ = opts.String("--type")
	if kind != "" && !valid(kind) {
		return fmt.Errorf("unknown type %q", kind)
	}

	expressions, _ = opts["EXPRESSION"].([]string)

	interactive = len(expressions) == 0 && terminal()

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	return nil
}

func valid(kind string) bool {
	for _, t := range Types {
		if t == kind {
			return true
		}
	}

	return false
}
