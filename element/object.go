package element

import (
	"github.com/cespare/xxhash/v2"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Member is one key/value entry of an Object under construction.
type Member struct {
	Key   string
	Value Element
}

// Object is an insertion-ordered mapping from unique string keys to
// Elements.
type Object struct {
	elem
	fields *linkedhashmap.Map // string -> Element
}

// NewObject builds an object from members, in order. A duplicate key
// overwrites the previous value and keeps its original position; a nil
// member value stands for JSON null.
func NewObject(members ...Member) *Object {
	m := linkedhashmap.New()
	for _, mb := range members {
		v := mb.Value
		if v == nil {
			v = Null
		}
		m.Put(mb.Key, v)
	}
	return &Object{elem: elem{Base{Kind: TypeObject}}, fields: m}
}

// Len returns the number of entries.
func (o *Object) Len() int { return o.fields.Size() }

func (o *Object) Size() (int, error) { return o.fields.Size(), nil }

func (o *Object) Get(key string) (Element, error) {
	v, ok := o.fields.Get(key)
	if !ok {
		return nil, &NotFoundError{Key: key}
	}
	return v.(Element), nil
}

func (o *Object) Lookup(key string) (Accessor, bool, error) {
	v, ok := o.fields.Get(key)
	if !ok {
		return nil, false, nil
	}
	return v.(Element), true, nil
}

func (o *Object) Keys() ([]string, error) {
	raw := o.fields.Keys()
	keys := make([]string, len(raw))
	for i, k := range raw {
		keys[i] = k.(string)
	}
	return keys, nil
}

// Range calls fn for each entry in insertion order until fn returns false.
func (o *Object) Range(fn func(key string, value Element) bool) {
	for _, k := range o.fields.Keys() {
		v, _ := o.fields.Get(k)
		if !fn(k.(string), v.(Element)) {
			return
		}
	}
}

func (o *Object) Raw() any {
	m := make(map[string]any, o.fields.Size())
	o.Range(func(k string, v Element) bool {
		m[k] = v.Raw()
		return true
	})
	return m
}

func (o *Object) Equal(other Element) bool {
	p, ok := other.(*Object)
	if !ok || p.Len() != o.Len() {
		return false
	}
	equal := true
	o.Range(func(k string, v Element) bool {
		w, found := p.fields.Get(k)
		if !found || !v.Equal(w.(Element)) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

const objectHashSeed = 0x9bb1c7a4d0d3a5c1

func (o *Object) Hash() uint64 {
	// Entry hashes combine by wrapping addition so that key order does not
	// matter, mirroring Equal.
	h := uint64(objectHashSeed)
	o.Range(func(k string, v Element) bool {
		h += xxhash.Sum64String(k) ^ v.Hash()
		return true
	})
	return h
}

func (o *Object) String() string { return mustMarshal(o) }
