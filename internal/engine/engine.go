// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed lisp code.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisp/internal/engine/boot"
	"github.com/michaelmacinnis/lisp/internal/engine/eval"
	"github.com/michaelmacinnis/lisp/internal/reader"
)

// ErrEmpty is returned by Run when the text holds no forms.
var ErrEmpty = errors.New("no forms") //nolint:gochecknoglobals

// T (engine) is a facade in front of the machinery for evaluating lisp code.
type T struct {
	eval  *eval.T
	log   *slog.Logger
	scope scope.I

	depth int
	steps int
}

type engine = T

// Option configures an engine.
type Option func(*engine)

// WithLogger sets the logger used by the engine and its evaluator.
func WithLogger(l *slog.Logger) Option {
	return func(e *engine) {
		e.log = l
	}
}

// WithDepthLimit limits how deeply function calls can nest. Zero is unbounded.
func WithDepthLimit(n int) Option {
	return func(e *engine) {
		e.depth = n
	}
}

// WithStepLimit limits the number of steps a single evaluation can take.
// Zero is unbounded.
func WithStepLimit(n int) Option {
	return func(e *engine) {
		e.steps = n
	}
}

// New creates a new engine with a freshly booted global scope.
func New(opts ...Option) (*T, error) {
	e := &engine{}

	for _, opt := range opts {
		opt(e)
	}

	if e.log == nil {
		e.log = slog.New(slog.DiscardHandler)
	}

	e.eval = eval.New(e.log, e.steps, e.depth)

	return e, e.Reset()
}

// Evaluate evaluates the cell c in the global scope.
func (e *T) Evaluate(c cell.I) (r cell.I, err error) {
	e.eval.Reset()

	defer func() {
		v := recover()
		if v == nil {
			return
		}

		// A runtime error is a bug in the interpreter, not in the program.
		if _, ok := v.(runtime.Error); ok {
			panic(v)
		}

		err = fault.From(v)

		e.log.Warn("evaluation aborted",
			"error", err.Error(),
			"steps", e.eval.Steps(),
			"trace", strings.Join(e.eval.Trace(), " < "),
		)
	}()

	return e.eval.Eval(c, e.scope), nil
}

// Reset discards all definitions and boots a new global scope.
func (e *T) Reset() error {
	s := boot.Environment()

	p, err := reader.Parse("boot.lisp", boot.Script())
	if err != nil {
		return fmt.Errorf("boot: %w", err)
	}

	// The prelude is trusted and runs without limits.
	b := eval.New(e.log, 0, 0)

	err = func() (err error) {
		defer func() {
			v := recover()
			if _, ok := v.(runtime.Error); ok {
				panic(v)
			} else if v != nil {
				err = fault.From(v)
			}
		}()

		for _, c := range p.Forms {
			b.Eval(c, s)
		}

		return nil
	}()
	if err != nil {
		return fmt.Errorf("boot: %w", err)
	}

	e.scope = s

	return nil
}

// Run parses text and evaluates each top-level form in order. It returns
// the value of the last form, or ErrEmpty if there are no forms. The name
// labels the text in error messages.
func (e *T) Run(name, text string) (cell.I, error) {
	p, err := reader.Parse(name, text)
	if err != nil {
		return nil, err
	}

	if p.Root() == nil {
		return nil, ErrEmpty
	}

	var r cell.I

	for _, c := range p.Forms {
		r, err = e.Evaluate(c)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Scope returns the global scope.
func (e *T) Scope() scope.I {
	return e.scope
}
