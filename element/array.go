package element

// Array is an immutable ordered sequence of Elements.
type Array struct {
	elem
	items []Element
}

// NewArray builds an array of the given elements, in order. A nil element
// stands for JSON null.
func NewArray(items ...Element) *Array {
	copied := make([]Element, len(items))
	for i, v := range items {
		if v == nil {
			v = Null
		}
		copied[i] = v
	}
	return &Array{elem: elem{Base{Kind: TypeArray}}, items: copied}
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.items) }

func (a *Array) Size() (int, error) { return len(a.items), nil }

func (a *Array) Index(i int) (Accessor, error) {
	if i < 0 || i >= len(a.items) {
		return nil, &UsageError{Msg: "array index out of range"}
	}
	return a.items[i], nil
}

func (a *Array) Raw() any {
	raw := make([]any, len(a.items))
	for i, v := range a.items {
		raw[i] = v.Raw()
	}
	return raw
}

func (a *Array) Equal(other Element) bool {
	b, ok := other.(*Array)
	if !ok || len(b.items) != len(a.items) {
		return false
	}
	for i, v := range a.items {
		if !v.Equal(b.items[i]) {
			return false
		}
	}
	return true
}

const arrayHashSeed = 0x85ebca77c2b2ae63

func (a *Array) Hash() uint64 {
	h := uint64(arrayHashSeed)
	for _, v := range a.items {
		h = h*31 + v.Hash()
	}
	return h
}

func (a *Array) String() string { return mustMarshal(a) }
