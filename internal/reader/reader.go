// Released under an MIT license. See LICENSE.

// Package reader turns source text into cells.
package reader

import (
	"errors"
	"strings"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/reader/lexer"
	"github.com/michaelmacinnis/lisp/internal/reader/parser"
)

// Program is the result of parsing some source text.
type Program struct {
	Text  string   // The source text, without surrounding whitespace.
	Forms []cell.I // Top-level forms, in order.
}

// Root returns the first top-level form or nil if there are none.
func (p *Program) Root() cell.I {
	if len(p.Forms) == 0 {
		return nil
	}

	return p.Forms[0]
}

// String returns the canonical text for the program p.
func (p *Program) String() string {
	s := make([]string, len(p.Forms))
	for i, c := range p.Forms {
		s[i] = literal.String(c)
	}

	return strings.Join(s, " ")
}

// Parse parses all of text. The name labels the text in error messages.
func Parse(name, text string) (*Program, error) {
	text = strings.TrimSpace(text)

	l := lexer.New(name)
	l.Scan(text + "\n")

	forms, err := parser.New(l.Token, l.Pending).Parse()
	if err != nil {
		return nil, err
	}

	return &Program{Text: text, Forms: forms}, nil
}

// T (reader) accumulates lines until they form a complete program.
type T struct {
	name  string
	lines []string
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{name: name}
}

// Pending returns true if the reader holds an incomplete program.
func (r *reader) Pending() bool {
	return len(r.lines) > 0
}

// Text returns the lines of the incomplete program.
func (r *reader) Text() string {
	return strings.Join(r.lines, "\n")
}

// Reset discards any incomplete program.
func (r *reader) Reset() {
	r.lines = nil
}

// Scan adds line to the text read so far. It returns a program once the
// text is complete, or nil if more lines are needed. On any other error
// the text read so far is discarded.
func (r *reader) Scan(line string) (*Program, error) {
	r.lines = append(r.lines, line)

	p, err := Parse(r.name, r.Text())
	if errors.Is(err, parser.ErrIncomplete) {
		return nil, nil
	}

	r.lines = nil

	if err != nil {
		return nil, err
	}

	if len(p.Forms) == 0 {
		return nil, nil
	}

	return p, nil
}
