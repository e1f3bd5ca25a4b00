// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the lisp language.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/xyproto/vt"

	"github.com/michaelmacinnis/lisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/common/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/reader"
	"github.com/michaelmacinnis/lisp/internal/system/history"
)

// Evaluator is the interface for things that evaluate parsed forms.
type Evaluator interface {
	Evaluate(c cell.I) (cell.I, error)
	Reset() error
	Scope() scope.I
}

// Run prompts for input on the terminal and sends each complete form
// to the Evaluator. It returns when the input ends.
func Run(e Evaluator, log *slog.Logger) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetMultiLineMode(true)
	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(e.Scope(), line, pos)
	})

	if err := history.Load(cli.ReadHistory); err != nil {
		log.Warn("cannot read history", "error", err.Error())
	}

	r := reader.New("lisp")
	s := session{e: e, w: os.Stdout, diagnose: colour}

	for {
		prompt := "> "
		if r.Pending() {
			prompt = "  "
		}

		line, err := cli.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			r.Reset()

			continue
		} else if err != nil {
			fmt.Fprintln(os.Stdout)

			break
		}

		if text := s.scan(r, line); text != "" {
			cli.AppendHistory(text)
		}
	}

	if err := history.Save(cli.WriteHistory); err != nil {
		log.Warn("cannot write history", "error", err.Error())
	}

	return nil
}

// Stream reads forms from r and writes results to w. It is used when
// the input is not a terminal.
func Stream(e Evaluator, r io.Reader, w io.Writer) error {
	lr := reader.New("stdin")
	s := session{e: e, w: w, diagnose: plain}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.scan(lr, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	if lr.Pending() {
		if _, err := reader.Parse("stdin", lr.Text()); err != nil {
			s.report(err)
		}
	}

	return nil
}

// complete offers the names visible from s that start with the word at pos.
func complete(s scope.I, line string, pos int) (head string, completions []string, tail string) {
	head, tail = line[:pos], line[pos:]

	i := strings.LastIndexAny(head, " \t()'") + 1
	head, word := head[:i], head[i:]

	for ; s != nil; s = s.Enclosing() {
		for _, n := range s.Names() {
			if strings.HasPrefix(n, word) {
				completions = append(completions, n)
			}
		}
	}

	return head, completions, tail
}

type session struct {
	e        Evaluator
	w        io.Writer
	diagnose func(string) string
}

func colour(s string) string {
	return vt.LightRed.Get(s)
}

func plain(s string) string {
	return s
}

func (s *session) report(err error) {
	fmt.Fprintln(s.w, s.diagnose("error: "+err.Error()))
}

// scan passes line to r and evaluates any forms it completes. It returns
// the completed program on a single line, if there is one.
func (s *session) scan(r *reader.T, line string) string {
	p, err := r.Scan(line)
	if err != nil {
		s.report(err)

		return ""
	}

	if p == nil {
		return ""
	}

	for _, c := range p.Forms {
		v, err := s.e.Evaluate(c)
		if err != nil {
			s.report(err)

			// The environment may hold partial results.
			if err := s.e.Reset(); err != nil {
				s.report(err)
			}

			break
		}

		fmt.Fprintln(s.w, literal.String(v))
	}

	return p.String()
}
