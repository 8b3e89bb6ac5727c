// Package element implements an immutable, strongly-typed in-memory
// representation of JSON documents.
//
// The closed variant set (Object, Array, String, Number, Boolean, Null) is
// exposed through the sealed Element interface. The open Accessor interface
// is the read protocol shared by Elements and by any external JSON-shaped
// structure (e.g. a mutable document builder): implement it (usually by
// embedding Base) and the serializer, Of and ToElement treat the structure
// exactly like an owned tree.
package element

import (
	"github.com/shopspring/decimal"
)

// Type describes the six kinds of a JSON node.
type Type int

const (
	TypeObject Type = iota
	TypeArray
	TypeString
	TypeNumber
	TypeBoolean
	TypeNull
)

// String returns the type name as spelled on json.org.
func (t Type) String() string {
	switch t {
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	case TypeNull:
		return "null"
	default:
		return "unknown"
	}
}

// Accessor is the read protocol of a JSON-shaped node. Type is the only
// primitive: every other method has a default that fails with a
// *TypeMismatchError unless the node's kind supports it. Embed Base to get
// those defaults.
//
// Unlike Element, an Accessor makes no immutability promise.
type Accessor interface {
	// Type returns the JSON type of the node. The generic operations in
	// this package dispatch on it, so it must be correct.
	Type() Type

	// Size returns the entry count of an object or the length of an array.
	Size() (int, error)
	// Index returns the i-th element of an array.
	Index(i int) (Accessor, error)
	// Lookup returns the value mapped to key in an object, reporting
	// whether the mapping exists.
	Lookup(key string) (Accessor, bool, error)
	// Keys returns an object's keys in insertion order.
	Keys() ([]string, error)

	// StringValue returns the raw string of a string node.
	StringValue() (string, error)
	// Decimal returns the raw decimal of a number node.
	Decimal() (decimal.Decimal, error)
	// Bool returns the raw boolean of a boolean node.
	Bool() (bool, error)
	// IsNull reports whether the node is a JSON null.
	IsNull() bool
}

// Element is an immutable JSON node. The set of implementations is closed:
// *Object, *Array, *String, *Number and the True, False and Null singletons.
// Instances are constructed bottom-up, never mutated afterwards, and safe to
// share across goroutines.
type Element interface {
	Accessor

	// Get returns the value mapped to key, or a *NotFoundError if no such
	// mapping exists. Use Lookup when absence is expected.
	Get(key string) (Element, error)
	// Raw recursively converts the node to native Go values:
	// map[string]any, []any, string, decimal.Decimal, bool or nil.
	// Returned containers are fresh copies owned by the caller.
	Raw() any
	// Equal reports deep structural equality: same variant and recursively
	// equal contents. Object comparison is key-order-independent, array
	// comparison is order-dependent, numbers compare by value.
	Equal(other Element) bool
	// Hash returns a hash consistent with Equal.
	Hash() uint64
	// String returns the compact JSON rendering of the node.
	String() string

	sealed()
}

// Base provides default implementations of every Accessor method except
// Type, each failing with a *TypeMismatchError that names Kind as the found
// type. External structures embed it with their node's type tag and override
// only the methods their kind supports.
type Base struct {
	Kind Type
}

func (b Base) Type() Type { return b.Kind }

func (b Base) Size() (int, error) {
	return 0, mismatch(b.Kind, TypeObject, TypeArray)
}

func (b Base) Index(i int) (Accessor, error) {
	return nil, mismatch(b.Kind, TypeArray)
}

func (b Base) Lookup(key string) (Accessor, bool, error) {
	return nil, false, mismatch(b.Kind, TypeObject)
}

func (b Base) Keys() ([]string, error) {
	return nil, mismatch(b.Kind, TypeObject)
}

func (b Base) StringValue() (string, error) {
	return "", mismatch(b.Kind, TypeString)
}

func (b Base) Decimal() (decimal.Decimal, error) {
	return decimal.Decimal{}, mismatch(b.Kind, TypeNumber)
}

func (b Base) Bool() (bool, error) {
	return false, mismatch(b.Kind, TypeBoolean)
}

func (b Base) IsNull() bool { return b.Kind == TypeNull }

// elem seals the closed variant set.
type elem struct{ Base }

func (elem) sealed() {}

func (e elem) Get(key string) (Element, error) {
	return nil, mismatch(e.Kind, TypeObject)
}

// Get returns the value mapped to key in an object node, failing with a
// *NotFoundError when the mapping does not exist and a *TypeMismatchError
// when the node is not an object.
func Get(a Accessor, key string) (Accessor, error) {
	v, ok, err := a.Lookup(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{Key: key}
	}
	return v, nil
}

// Int returns the number node narrowed to int, truncating any fraction.
func Int(a Accessor) (int, error) {
	d, err := a.Decimal()
	if err != nil {
		return 0, err
	}
	return int(d.IntPart()), nil
}

// Int64 returns the number node narrowed to int64, truncating any fraction.
func Int64(a Accessor) (int64, error) {
	d, err := a.Decimal()
	if err != nil {
		return 0, err
	}
	return d.IntPart(), nil
}

// Float64 returns the nearest float64 of a number node.
func Float64(a Accessor) (float64, error) {
	d, err := a.Decimal()
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}

// ToElement realizes an Accessor as an immutable Element. It is the identity
// for Elements; anything else is traversed through the read protocol and
// deep-copied bottom-up.
func ToElement(a Accessor) (Element, error) {
	if e, ok := a.(Element); ok {
		return e, nil
	}
	switch t := a.Type(); t {
	case TypeObject:
		keys, err := a.Keys()
		if err != nil {
			return nil, err
		}
		members := make([]Member, 0, len(keys))
		for _, k := range keys {
			child, ok, err := a.Lookup(k)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, &ConversionError{Reason: "key " + Quote(k, true) + " reported by Keys but not present"}
			}
			v, err := ToElement(child)
			if err != nil {
				return nil, err
			}
			members = append(members, Member{Key: k, Value: v})
		}
		return NewObject(members...), nil
	case TypeArray:
		n, err := a.Size()
		if err != nil {
			return nil, err
		}
		items := make([]Element, n)
		for i := 0; i < n; i++ {
			child, err := a.Index(i)
			if err != nil {
				return nil, err
			}
			if items[i], err = ToElement(child); err != nil {
				return nil, err
			}
		}
		return NewArray(items...), nil
	case TypeString:
		s, err := a.StringValue()
		if err != nil {
			return nil, err
		}
		return NewString(s), nil
	case TypeNumber:
		d, err := a.Decimal()
		if err != nil {
			return nil, err
		}
		return NewNumber(d), nil
	case TypeBoolean:
		b, err := a.Bool()
		if err != nil {
			return nil, err
		}
		return Bool(b), nil
	case TypeNull:
		return Null, nil
	default:
		return nil, &ConversionError{Reason: "invalid node type " + t.String()}
	}
}

// ToRaw converts any Accessor to native Go values, like Element.Raw.
func ToRaw(a Accessor) (any, error) {
	e, err := ToElement(a)
	if err != nil {
		return nil, err
	}
	return e.Raw(), nil
}
