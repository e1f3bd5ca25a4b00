// Released under an MIT license. See LICENSE.

package list

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
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

func check(t *testing.T, c cell.I, expected string) {
	t.Helper()

	if actual := literal.String(c); actual != expected {
		t.Fatalf("expected %s, got %s", expected, actual)
	}
}

func numbers(fs ...float64) []cell.I {
	cs := make([]cell.I, len(fs))
	for i, f := range fs {
		cs[i] = num.New(f)
	}

	return cs
}

func TestNew(t *testing.T) {
	check(t, New(), "()")
	check(t, New(numbers(1, 2, 3)...), "(1 2 3)")
	check(t, New(New(numbers(1)...), sym.New("a")), "((1) a)")

	if !Empty(New()) || Empty(New(numbers(1)...)) {
		t.Fatal("only a list with no nodes is empty")
	}
}

func TestAppendIsShared(t *testing.T) {
	x := New(numbers(1, 2, 3)...)
	alias := x

	if Append(x, num.New(4)) != x {
		t.Fatal("append should return the same handle")
	}

	Append(alias, num.New(5))

	check(t, x, "(1 2 3 4 5)")
}

func TestAppendToEmpty(t *testing.T) {
	x := New()

	Append(x, numbers(1, 2)...)

	check(t, x, "(1 2)")
}

func TestAppendThroughCdr(t *testing.T) {
	x := New(numbers(1, 2, 3)...)

	Append(Cdr(x), num.New(4))

	check(t, x, "(1 2 3 4)")
}

func TestAppendThroughCar(t *testing.T) {
	x := New(New(numbers(3, 4, 5)...), num.New(1), num.New(2))

	Append(Car(x), num.New(6))

	check(t, x, "((3 4 5 6) 1 2)")
}

func TestAppendNotAList(t *testing.T) {
	err := catch(func() { Append(num.New(1), num.New(2)) })
	if !errors.Is(err, fault.ErrNotAList) {
		t.Fatalf("expected not a list, got %v", err)
	}
}

func TestAppendRejectsCycles(t *testing.T) {
	x := New(numbers(1)...)
	outer := New(New(numbers(2)...), x)
	empty := New()

	for _, tt := range []struct {
		target, value cell.I
	}{
		{x, x},
		{x, New(x)},
		{x, outer},
		{Cdr(outer), outer},
		{x, Cdr(New(num.New(0), x))},
		{empty, empty},
		{empty, New(empty)},
	} {
		err := catch(func() { Append(tt.target, tt.value) })
		if !errors.Is(err, fault.ErrTypeMismatch) {
			t.Fatalf("expected type mismatch, got %v", err)
		}
	}

	check(t, x, "(1)")
	check(t, outer, "((2) (1))")
	check(t, empty, "()")
}

func TestAppendAllowsSharing(t *testing.T) {
	x := New(numbers(1)...)
	y := New(numbers(2)...)

	Append(y, x)
	Append(y, x)

	check(t, y, "(2 (1) (1))")

	Append(x, num.New(3))

	check(t, y, "(2 (1 3) (1 3))")
}

func TestCarCdrOfEmpty(t *testing.T) {
	if !Empty(Car(New())) {
		t.Fatal("car of the empty list should be the empty list")
	}

	if !Empty(Cdr(New())) {
		t.Fatal("cdr of the empty list should be the empty list")
	}

	if !Empty(Cdr(New(numbers(1)...))) {
		t.Fatal("cdr of a single element list should be the empty list")
	}
}

func TestSplit(t *testing.T) {
	first, rest := Split(New(numbers(1)...))
	if !first.Equal(num.New(1)) || rest != nil {
		t.Fatalf("unexpected split %v %v", first, rest)
	}

	first, rest = Split(New(numbers(1, 2, 3)...))
	if !first.Equal(num.New(1)) {
		t.Fatalf("unexpected first %v", first)
	}

	check(t, rest, "(2 3)")

	first, rest = Split(New())
	if !Empty(first) || rest != nil {
		t.Fatal("splitting the empty list should yield the empty list")
	}
}

func TestSliceAndLength(t *testing.T) {
	x := New(numbers(1, 2, 3)...)

	s := Slice(x)
	if len(s) != 3 || Length(x) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(s))
	}

	for i, c := range s {
		if !c.Equal(num.New(float64(i + 1))) {
			t.Fatalf("unexpected element %d: %v", i, c)
		}
	}

	if len(Slice(New())) != 0 || Length(New()) != 0 {
		t.Fatal("the empty list has no elements")
	}
}

func TestEqual(t *testing.T) {
	a := New(numbers(1, 2)...)
	b := New(numbers(1, 2)...)

	if !a.Equal(b) || !New().Equal(New()) {
		t.Fatal("lists with equal elements should be equal")
	}

	if a.Equal(New(numbers(1)...)) || a.Equal(New()) || a.Equal(num.New(1)) {
		t.Fatal("lists with different elements should not be equal")
	}

	if !a.Equal(a) {
		t.Fatal("a list should equal itself")
	}
}
