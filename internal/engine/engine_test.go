// Released under an MIT license. See LICENSE.

package engine

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"runtime"
	"strings"
	"testing"

	"github.com/steelseries/golisp"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/interface/number"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisp/internal/common/type/function"
	"github.com/michaelmacinnis/lisp/internal/reader"
)

func newEngine(t *testing.T, opts ...Option) *T {
	t.Helper()

	e, err := New(opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return e
}

func check(t *testing.T, text, expected string) {
	t.Helper()

	r, err := newEngine(t).Run("test", text)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", text, err)
	}

	if actual := literal.String(r); actual != expected {
		t.Fatalf("%s: expected %s, got %s", text, expected, actual)
	}
}

func TestArithmetic(t *testing.T) {
	check(t, "(+ 1 2)", "3")
	check(t, "(+ (+ 1 2) (+ 2 2))", "7")
	check(t, "(* (+ (* 1 2 3) (- 2 2 -5) (+ 1 1 2 3) (/ 1 2)) (+ 1 5 6))", "222")
}

func TestSharedMutation(t *testing.T) {
	check(t, "(do (def x (list 1 2 3)) (push 4 x) (push 5 x) x)", "(1 2 3 4 5)")
	check(t, "(do (def x (list (list 3 4 5) 1 2)) (push 6 (car x)) x)", "((3 4 5 6) 1 2)")
}

func TestFunctions(t *testing.T) {
	check(t, "(do (defn foo () (+ 1 1)) (foo))", "2")
	check(t, "(do ((lambda (x) (* x 3)) 3))", "9")
	check(t, "(do (def x 3) (def f (lambda (y) (* x y))) (f 3))", "9")
}

func TestPrelude(t *testing.T) {
	check(t, "(not true)", "false")
	check(t, "(and true false)", "false")
	check(t, "(or false true)", "true")
	check(t, "(empty (list))", "true")
	check(t, "(empty (list 1))", "false")
	check(t, "(length (list 1 2 3))", "3")
	check(t, "(last (list 1 2 3))", "3")
}

func TestMultipleForms(t *testing.T) {
	check(t, "(def x 2) (def y 3) (* x y)", "6")
	check(t, "(defn sq (n) (* n n)) ; comment\n(sq 4)", "16")
}

func TestDefinitionsPersist(t *testing.T) {
	e := newEngine(t)

	if _, err := e.Run("first", "(def x (list 1))"); err != nil {
		t.Fatal(err)
	}

	if _, err := e.Run("second", "(push 2 x)"); err != nil {
		t.Fatal(err)
	}

	r, err := e.Run("third", "x")
	if err != nil {
		t.Fatal(err)
	}

	if actual := literal.String(r); actual != "(1 2)" {
		t.Fatalf("expected (1 2), got %s", actual)
	}

	if err := e.Reset(); err != nil {
		t.Fatal(err)
	}

	if _, err := e.Run("fourth", "x"); !errors.Is(err, fault.ErrUnboundSymbol) {
		t.Fatalf("expected unbound symbol, got %v", err)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		text   string
		target error
	}{
		{"undefined", fault.ErrUnboundSymbol},
		{"(+ 1 'a)", fault.ErrNonNumericOperand},
		{"(push 1 2)", fault.ErrNotAList},
		{"(car (list 1) 2)", fault.ErrArityMismatch},
		{"(if 1 2 3)", fault.ErrTypeMismatch},
		{"(1 2 3)", fault.ErrNotCallable},
		{"(+ 1 2", fault.ErrUnmatchedParen},
		{"(+ 1 2))", fault.ErrUnmatchedParen},
		{`"open`, fault.ErrMalformedLiteral},
		{"(+ 1e400 1)", fault.ErrMalformedLiteral},
		{"(do (def x (list 1)) (push x x))", fault.ErrTypeMismatch},
	}

	for _, tt := range tests {
		_, err := newEngine(t).Run("test", tt.text)
		if !errors.Is(err, tt.target) {
			t.Errorf("%s: expected %v, got %v", tt.text, tt.target, err)
		}
	}
}

func TestEmptyProgram(t *testing.T) {
	for _, s := range []string{"", "  \n", "; nothing here"} {
		if _, err := newEngine(t).Run("test", s); !errors.Is(err, ErrEmpty) {
			t.Fatalf("%q: expected %v, got %v", s, ErrEmpty, err)
		}
	}
}

func TestRuntimeErrorsAreNotRecovered(t *testing.T) {
	e := newEngine(t)

	e.Scope().Define("broken", function.New("broken", function.Normal, function.Native(
		func(_ function.Evaluator, _ scope.I, _ []cell.I) cell.I {
			var m map[string]cell.I

			m["x"] = nil

			return nil
		},
	)))

	defer func() {
		if _, ok := recover().(runtime.Error); !ok {
			t.Fatal("expected a runtime error to escape")
		}
	}()

	_, err := e.Run("test", "(broken)")

	t.Fatalf("expected a panic, got %v", err)
}

func TestAbortStopsEvaluation(t *testing.T) {
	e := newEngine(t)

	_, err := e.Run("test", "(def x 1) (def y undefined) (def x 2)")
	if !errors.Is(err, fault.ErrUnboundSymbol) {
		t.Fatalf("expected unbound symbol, got %v", err)
	}

	r, err := e.Run("test", "x")
	if err != nil {
		t.Fatal(err)
	}

	if actual := literal.String(r); actual != "1" {
		t.Fatalf("expected 1, got %s", actual)
	}
}

func TestBudgets(t *testing.T) {
	loop := "(defn loop (n) (loop (+ n 1))) (loop 0)"

	e := newEngine(t, WithStepLimit(1000))
	if _, err := e.Run("test", loop); !errors.Is(err, fault.ErrBudgetExceeded) {
		t.Fatalf("expected budget exceeded, got %v", err)
	}

	// Each evaluation gets a fresh budget.
	if _, err := e.Run("test", "(length (list 1 2 3 4 5))"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e = newEngine(t, WithDepthLimit(64))
	if _, err := e.Run("test", loop); !errors.Is(err, fault.ErrBudgetExceeded) {
		t.Fatalf("expected budget exceeded, got %v", err)
	}
}

func TestAbortIsLogged(t *testing.T) {
	var b bytes.Buffer

	l := slog.New(slog.NewTextHandler(&b, nil))

	e := newEngine(t, WithLogger(l), WithDepthLimit(8))
	if _, err := e.Run("test", "(defn f (n) (f n)) (f 1)"); err == nil {
		t.Fatal("expected an error")
	}

	s := b.String()
	if !strings.Contains(s, "evaluation aborted") || !strings.Contains(s, "f < f") {
		t.Fatalf("unexpected log output: %s", s)
	}
}

func TestPrintParseRoundTrip(t *testing.T) {
	for _, s := range []string{
		"(+ 1 2)",
		"(do (def x (list 1 2 3)) (push 4 x) x)",
		"(lambda (x) (* x 3))",
		"'(a 'b ())",
		"$'a\\nb'",
	} {
		p, err := reader.Parse("test", s)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", s, err)
		}

		if actual := p.String(); actual != s {
			t.Fatalf("expected %s, got %s", s, actual)
		}
	}
}

// Arithmetic should agree with an independent implementation.
func TestArithmeticOracle(t *testing.T) {
	for _, s := range []string{
		"(+ 1.5 2.25)",
		"(- 10.0 2.5 1.25)",
		"(* 1.5 2.0 4.0)",
		"(/ 9.0 4.0)",
		"(* (+ 1.0 2.0) (- 7.0 2.5))",
		"(/ (+ 1.0 2.0 3.0) (* 2.0 0.5))",
	} {
		r, err := newEngine(t).Run("test", s)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", s, err)
		}

		actual := number.Value(r)

		env := golisp.NewSymbolTableFrameBelow(golisp.Global, "oracle")

		d, err := golisp.ParseAndEvalInEnvironment(s, env)
		if err != nil {
			t.Fatalf("%s: oracle error: %v", s, err)
		}

		expected := float64(golisp.FloatValue(d))
		if golisp.IntegerP(d) {
			expected = float64(golisp.IntegerValue(d))
		}

		if math.Abs(actual-expected) > 1e-4 {
			t.Fatalf("%s: expected %v, got %v", s, expected, actual)
		}
	}
}
