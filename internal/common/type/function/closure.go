// Released under an MIT license. See LICENSE.

package function

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisp/internal/common/type/env"
)

// Closure is a user-defined routine.
type Closure struct {
	Body   cell.I   // Body of the routine. Not evaluated until called.
	Params []string // Parameter names.
	Scope  scope.I  // Captured scope. Free variables resolve here.
}

// Execute binds args to the closure's parameters in a new scope enclosed
// by the captured scope and evaluates the body there. The caller's scope
// s is not visible to the body.
func (c *Closure) Execute(e Evaluator, _ scope.I, args []cell.I) cell.I {
	if len(args) != len(c.Params) {
		fault.Raise(
			fault.ArityMismatch,
			"expected %d argument%s, passed %d",
			len(c.Params), plural(len(c.Params)), len(args),
		)
	}

	frame := env.New(c.Scope)
	for i, p := range c.Params {
		frame.Define(p, args[i])
	}

	return e.Eval(c.Body, frame)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}

	return "s"
}
