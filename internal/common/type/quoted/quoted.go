// Released under an MIT license. See LICENSE.

// Package quoted provides the cell type for 'expr.
package quoted

import (
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
)

const name = "quoted"

// T (quoted) holds a single cell that evaluates to itself.
type T struct {
	inner cell.I
}

type quoted = T

// New wraps the cell c in one layer of quoting.
func New(c cell.I) cell.I {
	return &quoted{inner: c}
}

// Equal returns true if c is quoted and its inner cell is equal to q's.
func (q *quoted) Equal(c cell.I) bool {
	o, ok := c.(*quoted)

	return ok && q.inner.Equal(o.inner)
}

// Inner returns the cell wrapped by q.
func (q *quoted) Inner() cell.I {
	return q.inner
}

// Literal returns the literal representation of q.
func (q *quoted) Literal() string {
	return "'" + literal.String(q.inner)
}

// Name returns the type name for q.
func (q *quoted) Name() string {
	return name
}

// Is returns true if c is quoted.
func Is(c cell.I) bool {
	_, ok := c.(*quoted)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t quoted

	// The quoted type is a cell.
	_ = cell.I(&t)

	// The quoted type has a literal representation.
	_ = literal.I(&t)
}
