package element

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"unicode/utf16"
)

// EncodeOption customizes Marshal and Encode.
type EncodeOption func(*encodeOpts)

type encodeOpts struct {
	indent    int
	indentSet bool
	ascii     bool
}

// WithIndent renders each nesting level on its own line, indented by n
// spaces. n must not be negative; zero still produces the multi-line form.
func WithIndent(n int) EncodeOption {
	return func(o *encodeOpts) {
		o.indent = n
		o.indentSet = true
	}
}

// WithASCII escapes every code point outside printable ASCII as \u escapes,
// so the output contains only 7-bit characters.
func WithASCII() EncodeOption {
	return func(o *encodeOpts) { o.ascii = true }
}

// lineSeparator is the platform line terminator used by indented output.
var lineSeparator = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// Marshal renders a node as JSON text, compact unless WithIndent is given.
// It is total over well-formed Element trees; errors can only come from a
// misbehaving external Accessor or an invalid option.
func Marshal(a Accessor, opts ...EncodeOption) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, a, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Encode renders a node as JSON text to w. Write errors of w propagate
// unchanged.
func Encode(w io.Writer, a Accessor, opts ...EncodeOption) error {
	var o encodeOpts
	for _, opt := range opts {
		opt(&o)
	}
	// reject before any traversal or output
	if o.indentSet && o.indent < 0 {
		return &UsageError{Msg: fmt.Sprintf("indent < 0 (indent = %d)", o.indent)}
	}
	ew := &errWriter{w: w}
	enc := &encoder{w: ew, ascii: o.ascii}
	var err error
	if o.indentSet {
		err = enc.writeIndented(a, o.indent, 0)
	} else {
		err = enc.writeCompact(a)
	}
	if err != nil {
		return err
	}
	return ew.err
}

// mustMarshal is used by the Stringer implementations of the closed
// variants, whose serialization cannot fail.
func mustMarshal(e Element) string {
	s, err := Marshal(e)
	if err != nil {
		panic(err)
	}
	return s
}

// errWriter makes write failures sticky so the encoder does not have to
// check every single write.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) writeString(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (ew *errWriter) writeByte(b byte) {
	ew.writeString(string([]byte{b}))
}

type encoder struct {
	w     *errWriter
	ascii bool
}

func (e *encoder) writeCompact(a Accessor) error {
	switch t := a.Type(); t {
	case TypeObject:
		keys, err := a.Keys()
		if err != nil {
			return err
		}
		e.w.writeByte('{')
		for i, k := range keys {
			if i > 0 {
				e.w.writeByte(',')
			}
			e.quote(k)
			e.w.writeByte(':')
			child, err := e.member(a, k)
			if err != nil {
				return err
			}
			if err := e.writeCompact(child); err != nil {
				return err
			}
		}
		e.w.writeByte('}')
	case TypeArray:
		n, err := a.Size()
		if err != nil {
			return err
		}
		e.w.writeByte('[')
		for i := 0; i < n; i++ {
			if i > 0 {
				e.w.writeByte(',')
			}
			child, err := a.Index(i)
			if err != nil {
				return err
			}
			if err := e.writeCompact(child); err != nil {
				return err
			}
		}
		e.w.writeByte(']')
	default:
		return e.writeScalar(a, t)
	}
	return nil
}

func (e *encoder) writeIndented(a Accessor, indent, prefix int) error {
	switch t := a.Type(); t {
	case TypeObject:
		keys, err := a.Keys()
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			e.w.writeString("{}")
			return nil
		}
		pre := strings.Repeat(" ", prefix)
		ind := strings.Repeat(" ", indent)
		e.w.writeString("{" + lineSeparator + pre)
		for i, k := range keys {
			e.w.writeString(ind)
			e.quote(k)
			e.w.writeString(": ")
			child, err := e.member(a, k)
			if err != nil {
				return err
			}
			if err := e.writeIndented(child, indent, prefix+indent); err != nil {
				return err
			}
			if i < len(keys)-1 {
				e.w.writeString("," + lineSeparator + pre)
			}
		}
		e.w.writeString(lineSeparator + pre + "}")
	case TypeArray:
		n, err := a.Size()
		if err != nil {
			return err
		}
		if n == 0 {
			e.w.writeString("[]")
			return nil
		}
		pre := strings.Repeat(" ", prefix)
		ind := strings.Repeat(" ", indent)
		e.w.writeString("[" + lineSeparator + pre + ind)
		for i := 0; i < n; i++ {
			child, err := a.Index(i)
			if err != nil {
				return err
			}
			if err := e.writeIndented(child, indent, prefix+indent); err != nil {
				return err
			}
			if i < n-1 {
				e.w.writeString("," + lineSeparator + pre + ind)
			}
		}
		e.w.writeString(lineSeparator + pre + "]")
	default:
		return e.writeScalar(a, t)
	}
	return nil
}

func (e *encoder) writeScalar(a Accessor, t Type) error {
	switch t {
	case TypeString:
		s, err := a.StringValue()
		if err != nil {
			return err
		}
		e.quote(s)
	case TypeNumber:
		d, err := a.Decimal()
		if err != nil {
			return err
		}
		e.w.writeString(d.String())
	case TypeBoolean:
		b, err := a.Bool()
		if err != nil {
			return err
		}
		if b {
			e.w.writeString("true")
		} else {
			e.w.writeString("false")
		}
	case TypeNull:
		e.w.writeString("null")
	default:
		return &ConversionError{Reason: "invalid node type " + t.String()}
	}
	return nil
}

func (e *encoder) member(a Accessor, key string) (Accessor, error) {
	child, ok, err := a.Lookup(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ConversionError{Reason: "key " + Quote(key, true) + " reported by Keys but not present"}
	}
	return child, nil
}

func (e *encoder) quote(s string) {
	var sb strings.Builder
	appendQuoted(&sb, s, e.ascii)
	e.w.writeString(sb.String())
}

// Quote returns the JSON string literal for s, including the surrounding
// double quotes. With ascii set, every code point outside printable ASCII is
// \u-escaped.
func Quote(s string, ascii bool) string {
	var sb strings.Builder
	appendQuoted(&sb, s, ascii)
	return sb.String()
}

func appendQuoted(sb *strings.Builder, s string, ascii bool) {
	sb.WriteByte('"')
	for _, c := range s {
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '/':
			sb.WriteString(`\/`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if ascii && (c < 0x20 || c > 0x7e) {
				if c > 0xffff {
					// astral code points escape as a UTF-16 surrogate pair
					hi, lo := utf16.EncodeRune(c)
					fmt.Fprintf(sb, `\u%04x\u%04x`, hi, lo)
				} else {
					fmt.Fprintf(sb, `\u%04x`, c)
				}
			} else {
				sb.WriteRune(c)
			}
		}
	}
	sb.WriteByte('"')
}
