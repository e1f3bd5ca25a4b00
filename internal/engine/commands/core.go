// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/lisp/internal/common"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/lisp/internal/common/type/function"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
	"github.com/michaelmacinnis/lisp/internal/common/validate"
)

func eq(_ function.Evaluator, _ scope.I, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return boolean.Bool(v[0].Equal(v[1]))
}

func match(_ function.Evaluator, _ scope.I, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	ok, err := adapted.Match(common.String(v[0]), common.String(v[1]))
	if err != nil {
		fault.Raise(fault.MalformedLiteral, "%s", err.Error())
	}

	return boolean.Bool(ok)
}

// Syntax.

func def(e function.Evaluator, s scope.I, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	k := sym.To(v[0]).String()

	s.Define(k, e.Eval(v[1], s))

	return v[0]
}

func do(e function.Evaluator, s scope.I, args []cell.I) cell.I {
	validate.Variadic(args, 1)

	var r cell.I
	for _, a := range args {
		r = e.Eval(a, s)
	}

	return r
}

func iff(e function.Evaluator, s scope.I, args []cell.I) cell.I {
	v := validate.Fixed(args, 3, 3)

	if boolean.To(e.Eval(v[0], s)).Bool() {
		return e.Eval(v[1], s)
	}

	return e.Eval(v[2], s)
}
