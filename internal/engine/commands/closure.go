// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/type/env"
	"github.com/michaelmacinnis/lisp/internal/common/type/function"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
	"github.com/michaelmacinnis/lisp/internal/common/validate"
)

// defn creates a named function that closes over the defining scope itself.
// The function can see later definitions in that scope, including its own.
func defn(_ function.Evaluator, s scope.I, args []cell.I) cell.I {
	v := validate.Fixed(args, 3, 3)

	k := sym.To(v[0]).String()

	f := function.New(k, function.Normal, &function.Closure{
		Body:   v[2],
		Params: params(v[1]),
		Scope:  s,
	})

	s.Define(k, f)

	return f
}

// lambda creates an anonymous function that closes over a new scope
// enclosed by the defining scope.
func lambda(_ function.Evaluator, s scope.I, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return function.New("lambda", function.Normal, &function.Closure{
		Body:   v[1],
		Params: params(v[0]),
		Scope:  env.New(s),
	})
}

func params(c cell.I) []string {
	elements := list.Slice(c)

	names := make([]string, len(elements))
	for i, p := range elements {
		names[i] = sym.To(p).String()
	}

	return names
}
