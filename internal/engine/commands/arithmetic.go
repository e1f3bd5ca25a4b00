// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/number"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/type/function"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/validate"
)

func add(_ function.Evaluator, _ scope.I, args []cell.I) cell.I {
	sum := 0.0

	for _, a := range args {
		sum += number.Value(a)
	}

	return num.New(sum)
}

func div(_ function.Evaluator, _ scope.I, args []cell.I) cell.I {
	v, args := validate.Variadic(args, 1)

	quotient := number.Value(v[0])

	for _, a := range args {
		quotient /= number.Value(a)
	}

	return num.New(quotient)
}

func mul(_ function.Evaluator, _ scope.I, args []cell.I) cell.I {
	product := 1.0

	for _, a := range args {
		product *= number.Value(a)
	}

	return num.New(product)
}

func sub(_ function.Evaluator, _ scope.I, args []cell.I) cell.I {
	v, args := validate.Variadic(args, 1)

	difference := number.Value(v[0])

	for _, a := range args {
		difference -= number.Value(a)
	}

	return num.New(difference)
}
