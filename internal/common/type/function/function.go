// Released under an MIT license. See LICENSE.

// Package function provides the function cell type.
//
// A function has a name, a kind and an executor. The kind tells the
// evaluator whether arguments are evaluated before the executor sees them.
// The executor is either a native Go operation or a user-defined closure.
package function

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/struct/fault"
)

const name = "function"

// Kind determines how a function receives its arguments.
type Kind int

// Function kinds.
const (
	// Normal functions receive evaluated arguments.
	Normal Kind = iota

	// SpecialForm functions receive unevaluated arguments.
	SpecialForm

	// Macro is reserved. Macros receive unevaluated arguments.
	Macro
)

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case SpecialForm:
		return "special form"
	case Macro:
		return "macro"
	}

	return "unknown"
}

// Evaluator is anything that can evaluate a cell in a scope.
type Evaluator interface {
	Eval(c cell.I, s scope.I) cell.I
}

// Executor performs the work of a function.
type Executor interface {
	Execute(e Evaluator, s scope.I, args []cell.I) cell.I
}

// T (function) is a named operator.
type T struct {
	executor Executor
	kind     Kind
	name     string
}

type function = T

// New creates a new function cell.
func New(n string, k Kind, x Executor) cell.I {
	return &function{executor: x, kind: k, name: n}
}

// Equal returns true if c is a function with the same name as f.
// Distinct functions that share a name are considered equal.
func (f *function) Equal(c cell.I) bool {
	return Is(c) && To(c).name == f.name
}

// Execute invokes the function f with args in the scope s.
func (f *function) Execute(e Evaluator, s scope.I, args []cell.I) cell.I {
	return f.executor.Execute(e, s, args)
}

// Kind returns the kind of the function f.
func (f *function) Kind() Kind {
	return f.kind
}

// Literal returns a placeholder for the function f. It never shows a body.
func (f *function) Literal() string {
	return "#" + f.name
}

// Name returns the type name for the function f.
func (f *function) Name() string {
	return name
}

// String returns the name of the function f.
func (f *function) String() string {
	return f.name
}

// Is returns true if c is a function.
func Is(c cell.I) bool {
	_, ok := c.(*function)

	return ok
}

// To returns a *function if c is a function; Otherwise it aborts.
func To(c cell.I) *function {
	if f, ok := c.(*function); ok {
		return f
	}

	s := c.Name()
	if l, ok := c.(literal.I); ok {
		s += " " + l.Literal()
	}

	fault.Raise(fault.NotCallable, "%s", s)

	return nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t function

	// The function type is a cell.
	_ = cell.I(&t)

	// The function type has a literal representation.
	_ = literal.I(&t)

	// Native operations and closures are executors.
	_ = Executor(Native(nil))
	_ = Executor(&Closure{})
}
