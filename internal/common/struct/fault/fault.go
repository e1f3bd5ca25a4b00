// Released under an MIT license. See LICENSE.

// Package fault provides the error type used to abort an evaluation.
//
// Errors are raised by panicking with a *T. Nothing inside the evaluator
// recovers them. The engine facade is the one place that turns a panic back
// into an ordinary error value.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a fault.
type Kind int

// Fault kinds.
const (
	Unknown Kind = iota
	UnboundSymbol
	NonNumericOperand
	NotAList
	ArityMismatch
	TypeMismatch
	NotCallable
	UnmatchedParen
	MalformedLiteral
	BudgetExceeded
)

// T (fault) is an error with a kind.
type T struct {
	Kind Kind
	Msg  string
}

type fault = T

// Sentinels for use with errors.Is.
//
//nolint:gochecknoglobals
var (
	ErrUnboundSymbol     = &fault{Kind: UnboundSymbol}
	ErrNonNumericOperand = &fault{Kind: NonNumericOperand}
	ErrNotAList          = &fault{Kind: NotAList}
	ErrArityMismatch     = &fault{Kind: ArityMismatch}
	ErrTypeMismatch      = &fault{Kind: TypeMismatch}
	ErrNotCallable       = &fault{Kind: NotCallable}
	ErrUnmatchedParen    = &fault{Kind: UnmatchedParen}
	ErrMalformedLiteral  = &fault{Kind: MalformedLiteral}
	ErrBudgetExceeded    = &fault{Kind: BudgetExceeded}
)

// New creates a new fault of kind k.
func New(k Kind, format string, args ...interface{}) *T {
	return &fault{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Raise aborts the current evaluation with a new fault of kind k.
func Raise(k Kind, format string, args ...interface{}) {
	panic(New(k, format, args...))
}

// Error returns the text of the fault f, prefixed by its kind.
func (f *fault) Error() string {
	if f.Msg == "" {
		return f.Kind.String()
	}

	return f.Kind.String() + ": " + f.Msg
}

// Is reports whether target is a fault of the same kind as f.
func (f *fault) Is(target error) bool {
	t, ok := target.(*fault)

	return ok && t.Kind == f.Kind
}

// From converts a recovered panic value into an error.
func From(r interface{}) error {
	switch r := r.(type) {
	case *fault:
		return r
	case error:
		return r
	case string:
		return errors.New(r)
	case fmt.Stringer:
		return errors.New(r.String())
	}

	return New(Unknown, "unexpected error: %v", r)
}

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case UnboundSymbol:
		return "unbound symbol"
	case NonNumericOperand:
		return "non-numeric operand"
	case NotAList:
		return "not a list"
	case ArityMismatch:
		return "arity mismatch"
	case TypeMismatch:
		return "type mismatch"
	case NotCallable:
		return "not callable"
	case UnmatchedParen:
		return "unmatched paren"
	case MalformedLiteral:
		return "malformed literal"
	case BudgetExceeded:
		return "budget exceeded"
	case Unknown:
	}

	return "error"
}
