// Released under an MIT license. See LICENSE.

// Package literal defines the interface for types that have a canonical
// textual representation. It is the printer.
package literal

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/struct/fault"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a cell, if possible.
func String(c cell.I) string {
	if c == nil {
		return ""
	}

	l, ok := c.(I)
	if !ok {
		fault.Raise(fault.TypeMismatch, "%s does not have a literal representation", c.Name())
	}

	return l.Literal()
}
