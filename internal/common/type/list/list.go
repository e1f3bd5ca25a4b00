// Released under an MIT license. See LICENSE.

// Package list provides the list cell type.
//
// A list cell is a handle. It refers either to the first node of a chain
// of pairs or to nothing, which makes it the empty list. Chains are shared:
// list cells produced by Cdr, and every cell that holds the same handle,
// observe an Append made through any of them.
package list

import (
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisp/internal/common/type/pair"
)

const name = "list"

// T (list) refers to a chain of pairs.
type T struct {
	start *pair.T
}

type list = T

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	l := &list{}

	if len(elements) == 0 {
		return l
	}

	l.start = pair.Cons(elements[0], nil)
	end := l.start

	for _, e := range elements[1:] {
		p := pair.Cons(e, nil)
		pair.SetCdr(end, p)
		end = p
	}

	return l
}

// Equal returns true if c is a list with elements that are equal to l's.
func (l *list) Equal(c cell.I) bool {
	o, ok := c.(*list)
	if !ok {
		return false
	}

	a, b := l.start, o.start
	for a != nil && b != nil {
		if a == b {
			return true
		}

		if !pair.Car(a).Equal(pair.Car(b)) {
			return false
		}

		a, b = pair.Cdr(a), pair.Cdr(b)
	}

	return a == nil && b == nil
}

// Literal returns the literal representation of the list l.
func (l *list) Literal() string {
	var b strings.Builder

	b.WriteByte('(')

	for p := l.start; p != nil; p = pair.Cdr(p) {
		if p != l.start {
			b.WriteByte(' ')
		}

		b.WriteString(literal.String(pair.Car(p)))
	}

	b.WriteByte(')')

	return b.String()
}

// Name returns the name for a list type.
func (l *list) Name() string {
	return name
}

// String returns the text representation of the list l.
func (l *list) String() string {
	return l.Literal()
}

// Functions specific to list.

// Append appends each element in elements to the list c, in place.
// The same handle is returned. An element that contains c, at any depth,
// would make the list circular and aborts the append.
func Append(c cell.I, elements ...cell.I) cell.I {
	l := To(c)

	if len(elements) == 0 {
		return l
	}

	for _, e := range elements {
		if l.within(e) {
			fault.Raise(fault.TypeMismatch, "a list cannot contain itself")
		}
	}

	if l.start == nil {
		l.start = pair.Cons(elements[0], nil)
		elements = elements[1:]
	}

	end := pair.Last(l.start)

	for _, e := range elements {
		p := pair.Cons(e, nil)
		pair.SetCdr(end, p)
		end = p
	}

	return l
}

// Car returns the first element of the list c.
// The first element of the empty list is a new empty list.
func Car(c cell.I) cell.I {
	l := To(c)
	if l.start == nil {
		return New()
	}

	return pair.Car(l.start)
}

// Cdr returns a list of all but the first element of the list c.
// The returned list shares its nodes with c. If there are no remaining
// elements a new empty list is returned.
func Cdr(c cell.I) cell.I {
	l := To(c)
	if l.start == nil || pair.Cdr(l.start) == nil {
		return New()
	}

	return &list{start: pair.Cdr(l.start)}
}

// Empty returns true if c is the empty list.
func Empty(c cell.I) bool {
	l, ok := c.(*list)

	return ok && l.start == nil
}

// Length returns the number of elements in the list c.
func Length(c cell.I) int {
	n := 0

	for p := To(c).start; p != nil; p = pair.Cdr(p) {
		n++
	}

	return n
}

// Slice returns the elements of the list c, in order.
func Slice(c cell.I) []cell.I {
	s := []cell.I{}

	for p := To(c).start; p != nil; p = pair.Cdr(p) {
		s = append(s, pair.Car(p))
	}

	return s
}

// Split returns the first element of the list c and the remainder.
// If c has exactly one element, rest is nil. Splitting the empty list
// returns a new empty list and nil.
func Split(c cell.I) (first, rest cell.I) {
	l := To(c)
	if l.start == nil {
		return New(), nil
	}

	first = pair.Car(l.start)

	if next := pair.Cdr(l.start); next != nil {
		rest = &list{start: next}
	}

	return first, rest
}

// Is returns true if c is a list.
func Is(c cell.I) bool {
	_, ok := c.(*list)

	return ok
}

// To returns a *list if c is a list; Otherwise it aborts.
func To(c cell.I) *list {
	if l, ok := c.(*list); ok {
		return l
	}

	fault.Raise(fault.NotAList, "expected %s, got %s", name, describe(c))

	return nil
}

// within returns true if the list l, or any node of its chain, can be
// reached from c.
func (l *list) within(c cell.I) bool {
	chain := map[*pair.T]bool{}
	for p := l.start; p != nil; p = pair.Cdr(p) {
		chain[p] = true
	}

	seen := map[*pair.T]bool{}

	var reaches func(c cell.I) bool
	reaches = func(c cell.I) bool {
		o, ok := c.(*list)
		if !ok {
			return false
		}

		if o == l {
			return true
		}

		for p := o.start; p != nil && !seen[p]; p = pair.Cdr(p) {
			if chain[p] {
				return true
			}

			seen[p] = true

			if reaches(pair.Car(p)) {
				return true
			}
		}

		return false
	}

	return reaches(c)
}

func describe(c cell.I) string {
	if c == nil {
		return "nothing"
	}

	if l, ok := c.(literal.I); ok {
		return c.Name() + " " + l.Literal()
	}

	return c.Name()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)

	// The list type has a literal representation.
	_ = literal.I(&t)
}
