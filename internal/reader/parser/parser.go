// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the lisp language.
package parser

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisp/internal/common/struct/token"
	"github.com/michaelmacinnis/lisp/internal/common/type/list"
	"github.com/michaelmacinnis/lisp/internal/common/type/num"
	"github.com/michaelmacinnis/lisp/internal/common/type/quoted"
	"github.com/michaelmacinnis/lisp/internal/common/type/str"
	"github.com/michaelmacinnis/lisp/internal/common/type/sym"
)

// ErrIncomplete is matched by errors caused by input that ends too soon.
// More input may turn it into a complete parse.
var ErrIncomplete = errors.New("incomplete input") //nolint:gochecknoglobals

// T holds the state of the parser.
type T struct {
	ahead   int             // Lookahead count.
	item    func() *token.T // Function to call to get another token.
	pending func() bool     // Function to call to check for a partial token.
	token   *token.T        // Token lookahead.
}

// New creates a new parser.
// The item function returns the next token or nil when there are no more.
// The pending function reports whether input ended part way through a token.
func New(item func() *token.T, pending func() bool) *T {
	return &T{item: item, pending: pending}
}

// Parse consumes tokens until there are no more and returns every
// top-level form in order.
func (p *T) Parse() (forms []cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		forms = nil
		err = fault.From(r)
	}()

	forms = []cell.I{}

	for t := p.peek(); t != nil; t = p.peek() {
		forms = append(forms, p.form())
	}

	if p.pending != nil && p.pending() {
		p.exhausted("unexpected end of input")
	}

	return forms, nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// T state functions.

// <form> ::= '(' <form>* ')' | '\'' <form> | <atom> .
func (p *T) form() cell.I {
	t := p.peek()

	switch {
	case t == nil:
		p.exhausted("unexpected end of input")
	case t.Is('('):
		p.consume()

		return p.elements(t)
	case t.Is(')'):
		fault.Raise(fault.UnmatchedParen, "%s: unexpected ')'", t.Source())
	case t.Is('\''):
		p.consume()

		return quoted.New(p.form())
	}

	return p.atom(p.consume())
}

// <elements> ::= <form>* ')' .
func (p *T) elements(open *token.T) cell.I {
	elements := []cell.I{}

	for {
		t := p.peek()
		if t == nil {
			p.exhausted("%s: missing ')'", open.Source())
		}

		if t.Is(')') {
			p.consume()

			return list.New(elements...)
		}

		elements = append(elements, p.form())
	}
}

// <atom> ::= Symbol | DoubleQuoted | DollarSingleQuoted .
func (p *T) atom(t *token.T) cell.I {
	v := t.Value()

	switch t.Class() {
	case token.DoubleQuoted:
		return str.New(v[1 : len(v)-1])
	case token.DollarSingleQuoted:
		s, err := adapted.ActualBytes(v[2 : len(v)-1])
		if err != nil {
			fault.Raise(fault.MalformedLiteral, "%s: %s", t.Source(), err.Error())
		}

		return str.New(s)
	case token.Symbol:
		if n, ok := num.Parse(v); ok {
			return n
		}

		return sym.New(v)
	}

	fault.Raise(fault.MalformedLiteral, "%s: unexpected %s", t.Source(), t)

	return nil
}

// exhausted aborts the parse when input ends before a form is complete.
func (p *T) exhausted(format string, args ...interface{}) {
	if p.pending != nil && p.pending() {
		incomplete(fault.MalformedLiteral, "unterminated string")
	}

	incomplete(fault.UnmatchedParen, format, args...)
}

func incomplete(k fault.Kind, format string, args ...interface{}) {
	panic(fmt.Errorf("%w (%w)", fault.New(k, format, args...), ErrIncomplete))
}
