// Released under an MIT license. See LICENSE.

// Package eval provides the recursive evaluator.
//
// Atoms are looked up, quoted cells lose one layer of quoting, and
// non-empty lists are applications. Every other cell evaluates to itself.
// An application evaluates its head to find a function. Normal functions
// get their remaining elements evaluated, left to right. Special forms
// and macros get them as they are.
//
// Errors abort the whole evaluation by panicking with a *fault.T.
package eval

import (
	"context"
	"log/slog"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisp/internal/common/struct/frame"
	"github.com/michaelmacinnis/lisp/internal/common/type/function"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/quoted"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

// T (eval) holds the state of one evaluator.
type T struct {
	frame *frame.T
	log   *slog.Logger

	depth int // Maximum call depth. Zero is unbounded.
	limit int // Maximum number of steps. Zero is unbounded.
	steps int // Steps taken since the last reset.
}

type evaluator = T

// New creates a new evaluator. Limits of zero are unbounded.
func New(log *slog.Logger, steps, depth int) *T {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &evaluator{depth: depth, limit: steps, log: log}
}

// Eval evaluates the cell c in the scope s.
func (e *evaluator) Eval(c cell.I, s scope.I) cell.I {
	e.step(c)

	switch {
	case sym.Is(c):
		return s.Lookup(sym.To(c).String())
	case quoted.Is(c):
		return c.(*quoted.T).Inner()
	case list.Is(c):
		return e.apply(c, s)
	}

	return c
}

// Reset clears the call stack and step count left by a previous evaluation.
func (e *evaluator) Reset() {
	e.frame = nil
	e.steps = 0
}

// Steps returns the number of steps taken since the last reset.
func (e *evaluator) Steps() int {
	return e.steps
}

// Trace returns the names of the functions being called, innermost first.
// After an abort it shows where the evaluation was when it failed.
func (e *evaluator) Trace() []string {
	return e.frame.Trace()
}

func (e *evaluator) apply(c cell.I, s scope.I) cell.I {
	if list.Empty(c) {
		fault.Raise(fault.TypeMismatch, "the empty list cannot be evaluated")
	}

	head, rest := list.Split(c)

	f := function.To(e.Eval(head, s))

	args := []cell.I{}
	if rest != nil {
		args = list.Slice(rest)
	}

	switch f.Kind() {
	case function.Normal:
		for i, a := range args {
			args[i] = e.Eval(a, s)
		}
	case function.Macro:
		e.log.Debug("macro expansion is not supported", "name", f.String())
	case function.SpecialForm:
	}

	e.frame = frame.New(f.String(), e.frame)
	if e.depth > 0 && e.frame.Depth() >= e.depth {
		fault.Raise(fault.BudgetExceeded, "call depth exceeds %d", e.depth)
	}

	r := f.Execute(e, s, args)

	// Not deferred. After an abort the frame is left for Trace.
	e.frame = e.frame.Previous()

	return r
}

func (e *evaluator) step(c cell.I) {
	e.steps++

	if e.limit > 0 && e.steps > e.limit {
		fault.Raise(fault.BudgetExceeded, "more than %d steps", e.limit)
	}

	if e.log.Enabled(context.Background(), slog.LevelDebug) {
		e.log.Debug("eval", "step", e.steps, "depth", e.frame.Depth()+1, "cell", literal.String(c))
	}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t evaluator

	// The evaluator is what functions use to evaluate their arguments.
	_ = function.Evaluator(&t)
}
