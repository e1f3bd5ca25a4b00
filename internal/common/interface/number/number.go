// Released under an MIT license. See LICENSE.

// Package number defines the interface for numeric types.
package number

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/struct/fault"
)

// I (number) is anything that can be treated as a number.
type I interface {
	Float() float64
}

type number = I

// Value returns the float64 value for a cell, if possible.
func Value(c cell.I) float64 {
	n, ok := c.(number)
	if !ok {
		fault.Raise(
			fault.NonNumericOperand,
			"%s %s cannot be used in a numeric context",
			c.Name(), printable(c),
		)
	}

	return n.Float()
}

func printable(c cell.I) string {
	if l, ok := c.(literal.I); ok {
		return l.Literal()
	}

	return "#" + c.Name()
}
