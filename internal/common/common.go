// Released under an MIT license. See LICENSE.

// Package common defines common interfaces.
package common

import (
	"fmt"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/struct/fault"
)

type Stringer = fmt.Stringer

// String returns the string value for a cell, if possible.
func String(c cell.I) string {
	s, ok := c.(Stringer)
	if !ok {
		fault.Raise(fault.TypeMismatch, "%s cannot be used in a string context", c.Name())
	}

	return s.String()
}
