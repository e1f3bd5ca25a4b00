// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the lisp language.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/lisp/internal/common/struct/loc"
	"github.com/michaelmacinnis/lisp/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	saved action   // Escaped action.
	state action   // Current action.

	current loc.T // Location of the current byte.
	source  loc.T // Location of the current token's first byte.

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		current: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		tokens: make(chan *token.T, 1),
	}

	l.source = l.current
	l.state = skipWhitespace

	return l
}

// Pending returns true if the lexer is part way through a token.
func (l *T) Pending() bool {
	l.gather()

	return l.first < l.index
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
// A token that is cut off by the end of the available input is held back
// until more input is scanned.
func (l *T) Token() *token.T {
	for {
		select {
		case t := <-l.tokens:
			return t
		default:
		}

		l.gather()

		state := l.state(l)
		if state == nil {
			return nil
		}

		l.state = state
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.current.Line++
		l.current.Char = 1
	} else {
		l.current.Char++
	}

	l.index += w
}

func (l *T) emit(c token.Class) {
	l.tokens <- token.New(c, l.Text(), l.source)
	l.skip()
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped

	return a
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	l.bytes = l.bytes[l.first:] + strings.Join(l.queue, "")
	l.index -= l.first
	l.first = 0
	l.queue = nil
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil

	return resumed
}

func (l *T) skip() {
	l.source = l.current
	l.first = l.index
}

func delimiter(r rune) bool {
	switch r {
	case eof, '\t', '\n', '\r', ' ', '"', '\'', '(', ')', ';':
		return true
	}

	return false
}

// T states.

func afterDollar(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		return nil
	case '\'':
		l.accept(r, w)

		return scanDollarSingleQuoted
	}

	return scanSymbol
}

func scanDollarSingleQuoted(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\\':
			l.accept(r, w)

			return l.escape(scanDollarSingleQuoted, skipEscaped)
		case '\'':
			l.accept(r, w)
			l.emit(token.DollarSingleQuoted)

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanDoubleQuoted(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '"':
			l.accept(r, w)
			l.emit(token.DoubleQuoted)

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case delimiter(r):
			l.emit(token.Symbol)

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n':
			return skipWhitespace
		}

		l.accept(r, w)
		l.skip()
	}
}

func skipEscaped(l *T) action {
	r, w := l.peek()
	if r == eof {
		return nil
	}

	l.accept(r, w)

	return l.resume()
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\n', '\r', ' ':
			l.accept(r, w)
			l.skip()

			continue
		case ';':
			return skipComment
		case '(', ')', '\'':
			l.accept(r, w)
			l.emit(token.Class(r))

			return skipWhitespace
		case '"':
			l.accept(r, w)

			return scanDoubleQuoted
		case '$':
			l.accept(r, w)

			return afterDollar
		}

		return scanSymbol
	}
}
