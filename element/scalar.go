package element

import (
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

// String is an immutable JSON string.
type String struct {
	elem
	value string
}

// NewString returns a JSON string holding s.
func NewString(s string) *String {
	return &String{elem: elem{Base{Kind: TypeString}}, value: s}
}

// Value returns the raw string.
func (s *String) Value() string { return s.value }

func (s *String) StringValue() (string, error) { return s.value, nil }

func (s *String) Raw() any { return s.value }

func (s *String) Equal(other Element) bool {
	t, ok := other.(*String)
	return ok && t.value == s.value
}

const stringHashSeed = 0xc2b2ae3d27d4eb4f

func (s *String) Hash() uint64 {
	return stringHashSeed ^ xxhash.Sum64String(s.value)
}

func (s *String) String() string { return Quote(s.value, false) }

// Number is an immutable JSON number, held as an arbitrary-precision
// decimal. It is never NaN or infinite.
type Number struct {
	elem
	value decimal.Decimal
}

// NewNumber returns a JSON number holding d.
func NewNumber(d decimal.Decimal) *Number {
	return &Number{elem: elem{Base{Kind: TypeNumber}}, value: d}
}

// NewNumberInt64 returns a JSON number with a zero fractional scale.
func NewNumberInt64(n int64) *Number {
	return NewNumber(decimal.NewFromInt(n))
}

// NewNumberFloat64 returns a JSON number holding the shortest decimal that
// converts back to f exactly. NaN and infinities are rejected.
func NewNumberFloat64(f float64) (*Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &ConversionError{Reason: "number must be finite"}
	}
	return NewNumber(decimal.NewFromFloat(f)), nil
}

// Value returns the raw decimal.
func (n *Number) Value() decimal.Decimal { return n.value }

func (n *Number) Decimal() (decimal.Decimal, error) { return n.value, nil }

func (n *Number) Raw() any { return n.value }

// Equal compares by numeric value, so 1.10 and 1.1 are equal.
func (n *Number) Equal(other Element) bool {
	m, ok := other.(*Number)
	return ok && m.value.Cmp(n.value) == 0
}

const numberHashSeed = 0x27d4eb2f165667c5

func (n *Number) Hash() uint64 {
	return numberHashSeed ^ xxhash.Sum64String(canonicalNumber(n.value))
}

// canonicalNumber trims insignificant fractional zeros so that hashing
// agrees with value equality.
func canonicalNumber(d decimal.Decimal) string {
	s := d.String()
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func (n *Number) String() string { return n.value.String() }

type boolean struct {
	elem
	value bool
}

// True and False are the only boolean elements.
var (
	True  Element = &boolean{elem: elem{Base{Kind: TypeBoolean}}, value: true}
	False Element = &boolean{elem: elem{Base{Kind: TypeBoolean}}, value: false}
)

// Bool returns True or False.
func Bool(v bool) Element {
	if v {
		return True
	}
	return False
}

func (b *boolean) Bool() (bool, error) { return b.value, nil }

func (b *boolean) Raw() any { return b.value }

func (b *boolean) Equal(other Element) bool {
	c, ok := other.(*boolean)
	return ok && c.value == b.value
}

func (b *boolean) Hash() uint64 {
	if b.value {
		return 0x165667b19e3779f9
	}
	return 0x85ebca6b27d4eb2f
}

func (b *boolean) String() string {
	if b.value {
		return "true"
	}
	return "false"
}

type null struct{ elem }

// Null is the single JSON null element. Absent children are always
// represented by Null, never by a nil Element.
var Null Element = &null{elem: elem{Base{Kind: TypeNull}}}

func (*null) Raw() any { return nil }

func (*null) Equal(other Element) bool {
	_, ok := other.(*null)
	return ok
}

func (*null) Hash() uint64 { return 0x9e3779b185ebca87 }

func (*null) String() string { return "null" }
