// Released under an MIT license. See LICENSE.

package function

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
)

// Native is a function implemented in Go.
type Native func(e Evaluator, s scope.I, args []cell.I) cell.I

// Execute calls the native operation n.
func (n Native) Execute(e Evaluator, s scope.I, args []cell.I) cell.I {
	return n(e, s, args)
}
