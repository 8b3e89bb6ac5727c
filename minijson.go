// Package minijson is an immutable JSON document model with a strict
// recursive-descent parser and a configurable serializer.
//
// Parsed documents are trees of element.Element values: objects keep
// member insertion order, numbers are arbitrary-precision decimals, and
// every node is immutable and safe to share between goroutines. This
// package is a thin facade; the model lives in package element and the
// grammar in package parser.
package minijson

import (
	"io"

	"golang.org/x/text/encoding"

	"github.com/yuantj/minijson/element"
	"github.com/yuantj/minijson/parser"
)

// Element is a parsed JSON value. See package element for the concrete
// kinds and the read protocol.
type Element = element.Element

// Accessor is the read protocol Element satisfies. External types may
// implement it to be serialized or converted without building a tree.
type Accessor = element.Accessor

// Type identifies one of the six JSON value kinds.
type Type = element.Type

// Singleton values shared by every document.
var (
	Null  = element.Null
	True  = element.True
	False = element.False
)

// Parse parses exactly one JSON document from s.
func Parse(s string) (Element, error) {
	return parser.ParseString(s)
}

// ParseReader parses exactly one JSON document from r, holding only one
// rune of lookahead in memory. The reader is not closed.
func ParseReader(r io.Reader) (Element, error) {
	return parser.ParseReader(r)
}

// ParseBytes decodes data using enc (nil means UTF-8) and parses the
// result.
func ParseBytes(data []byte, enc encoding.Encoding) (Element, error) {
	return parser.ParseBytes(data, enc)
}

// DecodeReader parses one JSON document from r, decoding its bytes from
// enc (nil means UTF-8) on the fly.
func DecodeReader(r io.Reader, enc encoding.Encoding) (Element, error) {
	return parser.DecodeReader(r, enc)
}

// Of converts a native Go value into an Element. See element.Of for the
// conversion rules.
func Of(v any) (Element, error) {
	return element.Of(v)
}

// Stringify converts v with Of and serializes it.
func Stringify(v any, opts ...element.EncodeOption) (string, error) {
	e, err := element.Of(v)
	if err != nil {
		return "", err
	}
	return element.Marshal(e, opts...)
}

// Dump converts v with Of and writes its serialized form to w.
func Dump(w io.Writer, v any, opts ...element.EncodeOption) error {
	e, err := element.Of(v)
	if err != nil {
		return err
	}
	return element.Encode(w, e, opts...)
}

// ToRaw parses s and converts the document to plain Go values: objects
// become map[string]any, arrays []any, numbers decimal.Decimal.
func ToRaw(s string) (any, error) {
	e, err := parser.ParseString(s)
	if err != nil {
		return nil, err
	}
	return e.Raw(), nil
}
