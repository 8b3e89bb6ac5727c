package parser

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/yuantj/minijson/element"
)

// ParseBytes decodes data using enc and parses the result as one JSON
// document. A nil enc means UTF-8. Decoding failures are reported as
// *IOError values; the decoded text then goes through ParseString, so
// grammar errors carry exact character offsets.
func ParseBytes(data []byte, enc encoding.Encoding) (element.Element, error) {
	if enc == nil {
		enc = unicode.UTF8
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, &IOError{Err: err}
	}
	return ParseString(string(decoded))
}

// DecodeReader parses one JSON document from r, decoding its bytes from
// enc on the fly. A nil enc means UTF-8. Like ParseReader it holds only
// the current rune in memory, so decode failures surface mid-parse as
// *IOError values.
func DecodeReader(r io.Reader, enc encoding.Encoding) (element.Element, error) {
	if enc == nil {
		enc = unicode.UTF8
	}
	return ParseReader(transform.NewReader(r, enc.NewDecoder()))
}
