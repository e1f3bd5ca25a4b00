// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping the interpreter.
package boot

import (
	_ "embed" // Blank import required by embed.

	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/lisp/internal/common/type/env"
	"github.com/michaelmacinnis/lisp/internal/common/type/function"
	"github.com/michaelmacinnis/lisp/internal/engine/commands"
)

//go:embed boot.lisp
var script string //nolint:gochecknoglobals

// Environment creates a new global scope holding the builtins.
func Environment() scope.I {
	s := env.New(nil)

	for k, v := range commands.Functions() {
		s.Define(k, function.New(k, function.Normal, v))
	}

	for k, v := range commands.Syntax() {
		s.Define(k, function.New(k, function.SpecialForm, v))
	}

	s.Define("false", boolean.False)
	s.Define("true", boolean.True)

	return s
}

// Script returns the prelude evaluated in every new global scope.
func Script() string {
	return script
}
