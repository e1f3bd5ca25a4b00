// Released under an MIT license. See LICENSE.

// Package env provides the environment type.
package env

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisp/internal/common/struct/hash"
)

// T (env) maps names to values for one scope.
//
// A scope created for a closure call encloses the closure's captured scope.
// Names not found locally are resolved there. The caller's scope is never
// consulted.
type T struct {
	previous scope.I
	*table
}

type env = T

// We alias hash.T to table so that when embedded it is easy to refer to
// it by name. Embedding table also lets us access its methods directly.
type table = hash.T

// New creates a new env enclosed by previous. The root env has no previous.
func New(previous scope.I) *T {
	return &env{
		previous: previous,
		table:    hash.New(),
	}
}

// Define associates the name k with the cell v in the env e.
// An existing association for k in e is replaced.
func (e *env) Define(k string, v cell.I) {
	e.Set(k, v)
}

// Enclosing returns the enclosing scope.
func (e *env) Enclosing() scope.I {
	return e.previous
}

// Lookup retrieves the value associated with the name k.
// If there is no such value the evaluation is aborted.
func (e *env) Lookup(k string) cell.I {
	v, ok := e.Resolve(k)
	if !ok {
		fault.Raise(fault.UnboundSymbol, "%s", k)
	}

	return v
}

// Names returns the names defined directly in the env e.
func (e *env) Names() []string {
	return e.Keys()
}

// Resolve retrieves the value associated with the name k, if any.
func (e *env) Resolve(k string) (cell.I, bool) {
	if e == nil {
		return nil, false
	}

	if v, ok := e.Get(k); ok {
		return v, true
	}

	if e.previous != nil {
		return e.previous.Resolve(k)
	}

	return nil, false
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a scope.
	_ = scope.I(&t)
}
