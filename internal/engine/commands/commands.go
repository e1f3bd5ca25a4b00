// Released under an MIT license. See LICENSE.

// Package commands provides the builtin operator library.
package commands

import (
	"github.com/michaelmacinnis/lisp/internal/common/type/function"
)

// Functions returns the builtins that receive evaluated arguments.
func Functions() map[string]function.Native {
	return map[string]function.Native{
		"*":      mul,
		"+":      add,
		"-":      sub,
		"/":      div,
		"car":    car,
		"cdr":    cdr,
		"eq":     eq,
		"length": length,
		"list":   makeList,
		"match":  match,
		"push":   push,
	}
}

// Syntax returns the builtins that receive their arguments unevaluated.
func Syntax() map[string]function.Native {
	return map[string]function.Native{
		"def":    def,
		"defn":   defn,
		"do":     do,
		"if":     iff,
		"lambda": lambda,
	}
}
