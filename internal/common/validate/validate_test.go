// Released under an MIT license. See LICENSE.

package validate

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
)

func catch(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fault.From(r)
		}
	}()

	f()

	return nil
}

func TestFixed(t *testing.T) {
	args := []cell.I{num.New(1), num.New(2)}

	if len(Fixed(args, 2, 2)) != 2 {
		t.Fatal("expected both arguments")
	}

	err := catch(func() { Fixed(args, 1, 1) })
	if !errors.Is(err, fault.ErrArityMismatch) {
		t.Fatalf("expected arity mismatch, got %v", err)
	}

	if err.Error() != "arity mismatch: expected 1 argument, passed 2" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestVariadic(t *testing.T) {
	first, rest := Variadic([]cell.I{num.New(1), num.New(2), num.New(3)}, 1)
	if len(first) != 1 || len(rest) != 2 {
		t.Fatalf("unexpected split %v %v", first, rest)
	}

	err := catch(func() { Variadic(nil, 1) })
	if !errors.Is(err, fault.ErrArityMismatch) {
		t.Fatalf("expected arity mismatch, got %v", err)
	}
}
