// Released under an MIT license. See LICENSE.

// Package scope defines the interface for environments.
package scope

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
)

// I (scope) maps symbol names to cells for one lexical scope.
type I interface {
	Enclosing() I

	Define(k string, v cell.I)
	Lookup(k string) cell.I
	Names() []string
	Resolve(k string) (cell.I, bool)
}
