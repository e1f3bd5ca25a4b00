// Released under an MIT license. See LICENSE.

// Package options parses the command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

const version = "lisp 0.1.0"

//nolint:gochecknoglobals
var (
	addr        string
	command     string
	depth       int
	interactive bool
	script      string
	server      bool
	steps       int
	verbose     bool
	usage       = `lisp

Usage:
  lisp [-v] [--steps=N] [--depth=N] SCRIPT
  lisp [-v] [--steps=N] [--depth=N] -c COMMAND
  lisp [-v] [--steps=N] [--depth=N] --server [--addr=ADDR]
  lisp [-v] [-i]
  lisp -h
  lisp --version

Arguments:
  SCRIPT  Path to a lisp script.

Options:
  -a, --addr=ADDR        Address to listen on [default: 127.0.0.1:8081].
  -c, --command=COMMAND  Evaluate the specified expression.
  -d, --depth=N          Limit how deeply calls can nest [default: 0].
  -i, --interactive      Disable interactive mode.
  -s, --steps=N          Limit the steps for each top-level form [default: 0].
  --server               Evaluate code submitted over HTTP.
  -v, --verbose          Log each evaluation step.
  -h, --help             Display this help.
  --version              Print the version.

Limits of 0 are unbounded, except with --server, where depth defaults to
1000 and steps to 1000000. If stdin is a TTY, and lisp was invoked with
no script or command, interactive mode is enabled. Otherwise, it is disabled.
`
)

// Addr returns the address for the server to listen on.
func Addr() string {
	return addr
}

// Command returns the expression passed with -c.
func Command() string {
	return command
}

// Depth returns the call depth limit.
func Depth() int {
	return depth
}

// Interactive returns true if commands should be read from a terminal.
func Interactive() bool {
	return interactive
}

// Parse parses the command line for this process.
func Parse() {
	parse(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
}

// Script returns the path of the script to run.
func Script() string {
	return script
}

// Server returns true if code should be evaluated as it is submitted over HTTP.
func Server() bool {
	return server
}

// Steps returns the per-form step limit.
func Steps() int {
	return steps
}

// Verbose returns true if each evaluation step should be logged.
func Verbose() bool {
	return verbose
}

func parse(argv []string, terminal bool) {
	p := &docopt.Parser{
		HelpHandler: docopt.PrintHelpAndExit,
	}

	opts, err := p.ParseArgs(usage, argv, version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	addr, _ = opts.String("--addr")
	command, _ = opts.String("--command")
	depth, _ = opts.Int("--depth")
	script, _ = opts.String("SCRIPT")
	server, _ = opts.Bool("--server")
	steps, _ = opts.Int("--steps")
	verbose, _ = opts.Bool("--verbose")

	interactive = script == "" && command == "" && !server && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}
