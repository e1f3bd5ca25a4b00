// Released under an MIT license. See LICENSE.

// Package pair provides the node type that lists are built from.
// A node is not a cell. Lists are cells that refer to chains of nodes.
package pair

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
)

// T (pair) is one link in a list. It holds exactly one value.
type T struct {
	car cell.I
	cdr *T
}

type pair = T

// Car returns the value held by the pair p.
func Car(p *pair) cell.I {
	return p.car
}

// Cdr returns the next pair after p, or nil if p is the last.
func Cdr(p *pair) *pair {
	return p.cdr
}

// Cons creates a new pair holding h followed by t.
func Cons(h cell.I, t *pair) *pair {
	return &pair{car: h, cdr: t}
}

// Last returns the final pair in the chain starting at p.
// The chain must be non-circular.
func Last(p *pair) *pair {
	for p != nil && p.cdr != nil {
		p = p.cdr
	}

	return p
}

// SetCdr sets the pair that follows p.
func SetCdr(p *pair, next *pair) {
	p.cdr = next
}
