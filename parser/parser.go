// Package parser converts JSON text or character streams into element
// trees. The grammar is strict JSON, implemented as a recursive descent
// with one rune of lookahead over a small source contract satisfied by a
// string-backed and a reader-backed adapter.
//
// Recursion depth follows document nesting depth exactly; there is no
// explicit depth limit, so pathologically deep input can exhaust the stack.
package parser

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/yuantj/minijson/element"
)

// ParseString parses exactly one JSON document from input. Errors are
// *ParseError values carrying the character offset and the input text.
func ParseString(input string) (element.Element, error) {
	p := &parser{src: newStringSource(input)}
	return p.parse()
}

// ParseReader parses exactly one JSON document from r, reading rune by
// rune. Grammar violations are *ParseError values (message only); read
// failures are *IOError values wrapping the reader's error unchanged. The
// reader is not closed.
func ParseReader(r io.Reader) (element.Element, error) {
	src := newReaderSource(r)
	// prime the lookahead
	if err := src.advance(); err != nil {
		return nil, err
	}
	p := &parser{src: src}
	return p.parse()
}

// parser instances are single-use and not safe for concurrent use; each
// Parse* call builds its own.
type parser struct {
	src source
}

func (p *parser) parse() (element.Element, error) {
	e, err := p.parseElement()
	if err != nil {
		return nil, err
	}
	if p.src.hasMore() {
		return nil, p.src.errf("can only have one top-level JSON value")
	}
	return e, nil
}

func (p *parser) parseElement() (element.Element, error) {
	if err := p.skipWhitespace(); err != nil {
		return nil, err
	}
	if !p.src.hasMore() {
		return nil, p.src.errf("no valid JSON found")
	}
	var result element.Element
	var err error
	switch c := p.src.current(); {
	case c == '{':
		result, err = p.parseObject()
	case c == '[':
		result, err = p.parseArray()
	case c == '"':
		result, err = p.parseString()
	case c == 't' || c == 'f':
		result, err = p.parseBoolean()
	case c == 'n':
		result, err = p.parseNull()
	case isStartOfDigit(c):
		result, err = p.parseNumber()
	default:
		return nil, p.src.errf("not a valid start of a JSON value")
	}
	if err != nil {
		return nil, err
	}
	if err := p.skipWhitespace(); err != nil {
		return nil, err
	}
	return result, nil
}

func (p *parser) parseObject() (element.Element, error) {
	const errTerm = "object is not terminated with '}'"

	if err := p.advance(); err != nil { // step beyond opening '{'
		return nil, err
	}
	if err := p.skipWhitespace(); err != nil {
		return nil, err
	}
	if !p.src.hasMore() {
		return nil, p.src.errf(errTerm)
	}

	var members []element.Member
	for p.src.current() != '}' {
		key, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		ks, ok := key.(*element.String)
		if !ok {
			return nil, p.src.errf("a field must be of type string")
		}

		if !p.src.hasMore() || p.src.current() != ':' {
			return nil, p.src.errf("a field must be followed by ':'")
		}
		if err := p.advance(); err != nil { // skip ':'
			return nil, err
		}

		val, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		// duplicate keys overwrite, last occurrence wins
		members = append(members, element.Member{Key: ks.Value(), Value: val})

		if !p.src.hasMore() {
			return nil, p.src.errf(errTerm)
		}
		if p.src.current() == ',' {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if !p.src.hasMore() {
			return nil, p.src.errf(errTerm)
		}
	}

	if err := p.advance(); err != nil { // step beyond '}'
		return nil, err
	}
	return element.NewObject(members...), nil
}

func (p *parser) parseArray() (element.Element, error) {
	const errTerm = "array is not terminated with ']'"

	if err := p.advance(); err != nil { // step beyond opening '['
		return nil, err
	}
	if err := p.skipWhitespace(); err != nil {
		return nil, err
	}
	if !p.src.hasMore() {
		return nil, p.src.errf(errTerm)
	}

	var items []element.Element
	for p.src.current() != ']' {
		val, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		items = append(items, val)

		if !p.src.hasMore() {
			return nil, p.src.errf(errTerm)
		}
		if p.src.current() == ',' {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if !p.src.hasMore() {
			return nil, p.src.errf(errTerm)
		}
	}

	if err := p.advance(); err != nil { // step beyond ']'
		return nil, err
	}
	return element.NewArray(items...), nil
}

func (p *parser) parseString() (element.Element, error) {
	const errTerm = `string is not terminated with '"'`

	var sb strings.Builder
	var pending rune // high surrogate waiting for its other half
	flush := func() {
		if pending != 0 {
			sb.WriteRune(utf8.RuneError)
			pending = 0
		}
	}

	c, err := p.next(errTerm)
	if err != nil {
		return nil, err
	}
	for c != '"' {
		if c == '\\' {
			n, err := p.next(errTerm)
			if err != nil {
				return nil, err
			}
			switch n {
			case '"', '\\', '/':
				flush()
				sb.WriteRune(n)
			case 'b':
				flush()
				sb.WriteByte('\b')
			case 'f':
				flush()
				sb.WriteByte('\f')
			case 'n':
				flush()
				sb.WriteByte('\n')
			case 'r':
				flush()
				sb.WriteByte('\r')
			case 't':
				flush()
				sb.WriteByte('\t')
			case 'u':
				u, err := p.readHex4(errTerm)
				if err != nil {
					return nil, err
				}
				switch {
				case u >= 0xd800 && u <= 0xdbff: // high surrogate
					flush()
					pending = u
				case u >= 0xdc00 && u <= 0xdfff: // low surrogate
					if pending != 0 {
						sb.WriteRune(utf16.DecodeRune(pending, u))
						pending = 0
					} else {
						sb.WriteRune(utf8.RuneError)
					}
				default:
					flush()
					sb.WriteRune(u)
				}
			default:
				return nil, p.src.errf("unexpected escaped character '%c'", n)
			}
		} else {
			flush()
			sb.WriteRune(c)
		}
		if c, err = p.next(errTerm); err != nil {
			return nil, err
		}
	}
	flush()
	if err := p.advance(); err != nil { // step beyond closing '"'
		return nil, err
	}
	return element.NewString(sb.String()), nil
}

func (p *parser) readHex4(errTerm string) (rune, error) {
	var digits [4]rune
	for i := range digits {
		c, err := p.next(errTerm)
		if err != nil {
			return 0, err
		}
		digits[i] = c
	}
	s := string(digits[:])
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, p.src.errf(`invalid unicode escape '\u%s'`, s)
	}
	return rune(v), nil
}

func (p *parser) parseBoolean() (element.Element, error) {
	switch p.src.current() {
	case 't':
		if err := p.src.match("rue"); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return element.True, nil
	case 'f':
		if err := p.src.match("alse"); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return element.False, nil
	default:
		return nil, p.src.errf("unexpected boolean value")
	}
}

func (p *parser) parseNull() (element.Element, error) {
	if err := p.src.match("ull"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return element.Null, nil
}

func (p *parser) parseNumber() (element.Element, error) {
	var sb strings.Builder

	if p.src.current() == '-' {
		sb.WriteByte('-')
		if err := p.advance(); err != nil {
			return nil, err
		}
		if !p.src.hasMore() {
			return nil, p.src.errf("a number cannot consist of only '-'")
		}
	}

	if p.src.current() == '0' {
		sb.WriteByte('0')
		if err := p.advance(); err != nil {
			return nil, err
		}
	} else {
		for p.src.hasMore() && isDigit(p.src.current()) {
			sb.WriteRune(p.src.current())
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	if p.src.hasMore() && p.src.current() == '.' {
		sb.WriteByte('.')
		if err := p.advance(); err != nil {
			return nil, err
		}
		if !p.src.hasMore() {
			return nil, p.src.errf("a number cannot end with '.'")
		}
		if !isDigit(p.src.current()) {
			return nil, p.src.errf("must be at least one digit after '.'")
		}
		for p.src.hasMore() && isDigit(p.src.current()) {
			sb.WriteRune(p.src.current())
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	if p.src.hasMore() && (p.src.current() == 'e' || p.src.current() == 'E') {
		sb.WriteRune(p.src.current())
		if err := p.advance(); err != nil {
			return nil, err
		}
		if !p.src.hasMore() {
			return nil, p.src.errf("a number cannot end with 'e' or 'E'")
		}
		if p.src.current() == '+' || p.src.current() == '-' {
			sb.WriteRune(p.src.current())
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if !p.src.hasMore() || !isDigit(p.src.current()) {
			return nil, p.src.errf("a digit must follow {'e','E'}{'+','-'}")
		}
		for p.src.hasMore() && isDigit(p.src.current()) {
			sb.WriteRune(p.src.current())
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	d, err := decimal.NewFromString(sb.String())
	if err != nil {
		return nil, p.src.errf("invalid number %q", sb.String())
	}
	return element.NewNumber(d), nil
}

func (p *parser) advance() error { return p.src.advance() }

// next advances and returns the new lookahead, failing with message when
// the input ends first.
func (p *parser) next(message string) (rune, error) {
	if err := p.src.advance(); err != nil {
		return 0, err
	}
	if !p.src.hasMore() {
		return 0, p.src.errf(message)
	}
	return p.src.current(), nil
}

func (p *parser) skipWhitespace() error {
	for p.src.hasMore() && isWhitespace(p.src.current()) {
		if err := p.src.advance(); err != nil {
			return err
		}
	}
	return nil
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isStartOfDigit(c rune) bool { return isDigit(c) || c == '-' }

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}
