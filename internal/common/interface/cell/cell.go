// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all lisp values.
package cell

// I (cell) is the basic unit of storage. Every datum and every piece of
// parsed syntax is a cell.
type I interface {
	Equal(c I) bool
	Name() string
}
