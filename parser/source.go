package parser

import (
	"bufio"
	"fmt"
	"io"

	"github.com/yuantj/minijson/element"
)

// source is the character stream the grammar reads from: one rune of
// lookahead, no backtracking. Both adapters implement the same contract so
// the grammar functions are written once.
type source interface {
	// current returns the lookahead rune. Only valid while hasMore is true.
	current() rune
	// advance moves the lookahead to the next rune. A read failure is
	// returned as a *IOError.
	advance() error
	// hasMore reports whether a lookahead rune is available.
	hasMore() bool
	// match consumes the runes of lit, which must follow the current rune
	// exactly.
	match(lit string) error
	// errf builds a *ParseError at the current position.
	errf(format string, args ...any) error
}

// stringSource is the random-access adapter. Its errors carry the offset
// and the complete input text.
type stringSource struct {
	input string
	runes []rune
	pos   int
}

func newStringSource(input string) *stringSource {
	return &stringSource{input: input, runes: []rune(input)}
}

func (s *stringSource) current() rune { return s.runes[s.pos] }

func (s *stringSource) advance() error {
	s.pos++
	return nil
}

func (s *stringSource) hasMore() bool { return s.pos < len(s.runes) }

func (s *stringSource) match(lit string) error {
	for _, want := range lit {
		s.pos++
		if !s.hasMore() {
			return s.errf("unexpected end")
		}
		if got := s.runes[s.pos]; got != want {
			return s.errf("expected character \"%c\", %s found", want, element.Quote(string(got), false))
		}
	}
	return nil
}

func (s *stringSource) errf(format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Pos: s.pos, Input: s.input}
}

// readerSource is the stream adapter: single lookahead, no random access,
// so its errors carry the message only. It never closes the underlying
// reader; the caller owns that resource.
type readerSource struct {
	r   io.RuneReader
	cur rune
	eof bool
}

func newReaderSource(r io.Reader) *readerSource {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &readerSource{r: rr}
}

func (s *readerSource) current() rune { return s.cur }

func (s *readerSource) advance() error {
	c, _, err := s.r.ReadRune()
	if err == io.EOF {
		s.eof = true
		return nil
	}
	if err != nil {
		s.eof = true
		return &IOError{Err: err}
	}
	s.cur = c
	return nil
}

func (s *readerSource) hasMore() bool { return !s.eof }

// match bulk-reads len(lit) runes instead of stepping the lookahead one
// rune at a time.
func (s *readerSource) match(lit string) error {
	for _, want := range lit {
		got, _, err := s.r.ReadRune()
		if err == io.EOF {
			s.eof = true
			return s.errf("unexpected end")
		}
		if err != nil {
			s.eof = true
			return &IOError{Err: err}
		}
		if got != want {
			return s.errf("expected character \"%c\", %s found", want, element.Quote(string(got), false))
		}
		s.cur = got
	}
	return nil
}

func (s *readerSource) errf(format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Pos: -1}
}
