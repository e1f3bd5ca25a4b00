// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/type/function"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/validate"
)

func car(_ function.Evaluator, _ scope.I, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return list.Car(v[0])
}

func cdr(_ function.Evaluator, _ scope.I, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return list.Cdr(v[0])
}

func length(_ function.Evaluator, _ scope.I, args []cell.I) cell.I {
	v := validate.Fixed(args, 1, 1)

	return num.New(float64(list.Length(v[0])))
}

func makeList(_ function.Evaluator, _ scope.I, args []cell.I) cell.I {
	return list.New(args...)
}

// push appends a value to a list in place. Everything holding the list
// sees the new element.
func push(_ function.Evaluator, _ scope.I, args []cell.I) cell.I {
	v := validate.Fixed(args, 2, 2)

	return list.Append(v[1], v[0])
}
