package element

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"sort"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/shopspring/decimal"
)

// Of converts a native Go value to an Element:
//
//   - nil becomes Null
//   - an Accessor (including any Element) is realized via ToElement
//   - a decimal.Decimal becomes a Number
//   - a map becomes an Object: keys are coerced to their default text form,
//     plain Go maps are traversed in sorted-key order, a *linkedhashmap.Map
//     keeps its insertion order; the last write wins on coerced-key
//     collisions
//   - a slice or array becomes an Array with elements converted
//     recursively; []rune becomes an array of one-character strings
//   - a numeric value becomes a Number (non-finite floats are rejected)
//   - a bool becomes True or False
//   - anything else becomes a String via its default text form, except
//     chan, func and unsafe pointer values, which are rejected
//
// Pointers are followed; a nil pointer becomes Null. Failures surface as a
// *ConversionError before any partial value escapes.
func Of(v any) (Element, error) {
	return convert(nil, v)
}

// ConverterFunc converts one native value to an Element.
type ConverterFunc func(v any) (Element, error)

// Registry maps Go types to custom converters. It is an explicit value
// scoped to the caller; there is no process-wide registration. Converters
// run before the built-in Of precedence, at every level of the conversion,
// matched first by exact type and then by assignability in registration
// order.
//
// A Registry must be fully populated before use; Register is not safe to
// call concurrently with Of.
type Registry struct {
	entries []registryEntry
}

type registryEntry struct {
	typ reflect.Type
	fn  ConverterFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// Register installs fn for the dynamic type of sample.
func (r *Registry) Register(sample any, fn ConverterFunc) {
	r.entries = append(r.entries, registryEntry{typ: reflect.TypeOf(sample), fn: fn})
}

// Of converts like the package-level Of, consulting the registry first.
func (r *Registry) Of(v any) (Element, error) {
	return convert(r, v)
}

func (r *Registry) lookup(t reflect.Type) ConverterFunc {
	if r == nil || t == nil {
		return nil
	}
	for _, e := range r.entries {
		if e.typ == t {
			return e.fn
		}
	}
	for _, e := range r.entries {
		if e.typ != nil && t.AssignableTo(e.typ) {
			return e.fn
		}
	}
	return nil
}

func convert(r *Registry, v any) (Element, error) {
	if v == nil {
		return Null, nil
	}
	if fn := r.lookup(reflect.TypeOf(v)); fn != nil {
		return fn(v)
	}
	switch x := v.(type) {
	case Element:
		return x, nil
	case Accessor:
		return ToElement(x)
	case decimal.Decimal:
		return NewNumber(x), nil
	case *linkedhashmap.Map:
		return convertOrderedMap(r, x)
	case []rune:
		items := make([]Element, len(x))
		for i, c := range x {
			items[i] = NewString(string(c))
		}
		return NewArray(items...), nil
	case bool:
		return Bool(x), nil
	case string:
		return NewString(x), nil
	case int:
		return NewNumberInt64(int64(x)), nil
	case int8:
		return NewNumberInt64(int64(x)), nil
	case int16:
		return NewNumberInt64(int64(x)), nil
	case int32:
		return NewNumberInt64(int64(x)), nil
	case int64:
		return NewNumberInt64(x), nil
	case uint:
		return NewNumber(decimal.NewFromUint64(uint64(x))), nil
	case uint8:
		return NewNumberInt64(int64(x)), nil
	case uint16:
		return NewNumberInt64(int64(x)), nil
	case uint32:
		return NewNumberInt64(int64(x)), nil
	case uint64:
		return NewNumber(decimal.NewFromUint64(x)), nil
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return nil, &ConversionError{Reason: fmt.Sprintf("number must be finite, got %v", x)}
		}
		return NewNumber(decimal.NewFromFloat32(x)), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, &ConversionError{Reason: fmt.Sprintf("number must be finite, got %v", x)}
		}
		return NewNumber(decimal.NewFromFloat(x)), nil
	case *big.Int:
		return NewNumber(decimal.NewFromBigInt(x, 0)), nil
	}
	return convertReflect(r, v)
}

func convertReflect(r *Registry, v any) (Element, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null, nil
		}
		return convert(r, rv.Elem().Interface())
	case reflect.Map:
		return convertMap(r, rv)
	case reflect.Slice, reflect.Array:
		items := make([]Element, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			e, err := convert(r, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			items[i] = e
		}
		return NewArray(items...), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return NewString(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewNumberInt64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return NewNumber(decimal.NewFromUint64(rv.Uint())), nil
	case reflect.Float32:
		f := float32(rv.Float())
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return nil, &ConversionError{Reason: fmt.Sprintf("number must be finite, got %v", f)}
		}
		return NewNumber(decimal.NewFromFloat32(f)), nil
	case reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &ConversionError{Reason: fmt.Sprintf("number must be finite, got %v", f)}
		}
		return NewNumber(decimal.NewFromFloat(f)), nil
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return nil, &ConversionError{Reason: fmt.Sprintf("unsupported conversion input of type %T", v)}
	default:
		// everything else stringifies through its default text form
		return NewString(fmt.Sprint(v)), nil
	}
}

func convertMap(r *Registry, rv reflect.Value) (Element, error) {
	type pair struct {
		key string
		val reflect.Value
	}
	pairs := make([]pair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, pair{key: fmt.Sprint(iter.Key().Interface()), val: iter.Value()})
	}
	// Go maps carry no order, so sort the coerced keys for determinism.
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })
	members := make([]Member, 0, len(pairs))
	for _, p := range pairs {
		e, err := convert(r, p.val.Interface())
		if err != nil {
			return nil, err
		}
		members = append(members, Member{Key: p.key, Value: e})
	}
	return NewObject(members...), nil
}

func convertOrderedMap(r *Registry, m *linkedhashmap.Map) (Element, error) {
	members := make([]Member, 0, m.Size())
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		e, err := convert(r, v)
		if err != nil {
			return nil, err
		}
		members = append(members, Member{Key: fmt.Sprint(k), Value: e})
	}
	return NewObject(members...), nil
}
