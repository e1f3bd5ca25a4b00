// Released under an MIT license. See LICENSE.

// Package validate provides argument count checks for builtins.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/struct/fault"
)

// Variadic checks that at least min arguments were passed. It returns the
// first min arguments and the rest.
func Variadic(actual []cell.I, min int) ([]cell.I, []cell.I) {
	if len(actual) < min {
		s := Count(min, "argument", "s")
		fault.Raise(fault.ArityMismatch, "expected at least %s, passed %d", s, len(actual))
	}

	return actual[:min], actual[min:]
}

// Fixed checks that between min and max arguments, inclusive, were passed.
func Fixed(actual []cell.I, min, max int) []cell.I {
	n := len(actual)
	if n >= min && n <= max {
		return actual
	}

	s := Count(max, "argument", "s")
	if min != max {
		s = fmt.Sprintf("%d to %s", min, s)
	}

	fault.Raise(fault.ArityMismatch, "expected %s, passed %d", s, n)

	return nil
}

// Count returns n followed by label, pluralized with p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
