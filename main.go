// Released under an MIT license. See LICENSE.

/*
Lisp is a small interpreter for a Lisp dialect with shared, mutable lists.

    (def x (list 1 2 3))
    (push 4 x)
    (defn square (n) (* n n))
    ((lambda (n) (square n)) 3)

Expressions are read from a script, from the command line, from a
terminal, or from HTTP requests.
*/
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/engine"
	"github.com/michaelmacinnis/lisp/internal/server"
	"github.com/michaelmacinnis/lisp/internal/system/options"
	"github.com/michaelmacinnis/lisp/internal/ui"
)

func main() {
	options.Parse()

	level := slog.LevelWarn
	if options.Verbose() {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(log); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	opts := []engine.Option{engine.WithLogger(log)}

	// Zero keeps the default, which for the server is not unbounded.
	if n := options.Depth(); n > 0 {
		opts = append(opts, engine.WithDepthLimit(n))
	}

	if n := options.Steps(); n > 0 {
		opts = append(opts, engine.WithStepLimit(n))
	}

	if options.Server() {
		return server.New(log, opts...).ListenAndServe(options.Addr())
	}

	e, err := engine.New(opts...)
	if err != nil {
		return err
	}

	switch {
	case options.Command() != "":
		return evaluate(e, "command", options.Command())
	case options.Script() != "":
		b, err := os.ReadFile(options.Script())
		if err != nil {
			return err
		}

		return evaluate(e, options.Script(), string(b))
	case options.Interactive():
		return ui.Run(e, log)
	}

	return ui.Stream(e, os.Stdin, os.Stdout)
}

func evaluate(e *engine.T, name, text string) error {
	r, err := e.Run(name, text)
	if errors.Is(err, engine.ErrEmpty) {
		return nil
	} else if err != nil {
		return err
	}

	fmt.Println(literal.String(r))

	return nil
}
