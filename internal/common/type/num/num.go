// Released under an MIT license. See LICENSE.

// Package num provides the number cell type.
package num

import (
	"errors"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/interface/number"
	"github.com/michaelmacinnis/lisp/internal/common/struct/fault"
)

const name = "number"

// T (num) wraps Go's float64 type.
type T float64

type num = T

// New creates a new num cell from the float f.
func New(f float64) cell.I {
	n := num(f)

	return &n
}

// Parse creates a new num cell from the text s, if s is a decimal number.
// A decimal number too large or too small for a float64 aborts the parse.
// Text such as "inf", "NaN" or "0x1p-2" is not considered numeric.
func Parse(s string) (cell.I, bool) {
	if strings.IndexFunc(s, nondecimal) >= 0 {
		return nil, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		fault.Raise(fault.MalformedLiteral, "%s is out of range", s)
	} else if err != nil {
		return nil, false
	}

	return New(f), true
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Float() == To(c).Float()
}

// Float returns the value of the num n as a float64.
func (n *num) Float() float64 {
	return float64(*n)
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n.
func (n *num) String() string {
	return strconv.FormatFloat(n.Float(), 'f', -1, 64)
}

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a *num if c is a num; Otherwise it aborts.
func To(c cell.I) *num {
	if n, ok := c.(*num); ok {
		return n
	}

	fault.Raise(fault.NonNumericOperand, "expected %s, got %s", name, c.Name())

	return nil
}

func nondecimal(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
	case r == '.', r == '+', r == '-', r == 'e', r == 'E':
	default:
		return true
	}

	return false
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a number.
	_ = number.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
