package element

import (
	"math"
	"math/big"
	"testing"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	type args struct {
		v any
	}
	tests := []struct {
		name string
		args args
		want string // compact rendering of the converted element
	}{
		{"nil", args{nil}, "null"},
		{"bool", args{true}, "true"},
		{"string", args{"hey"}, `"hey"`},
		{"int", args{-3}, "-3"},
		{"int64", args{int64(1) << 60}, "1152921504606846976"},
		{"uint64 beyond int64", args{uint64(math.MaxUint64)}, "18446744073709551615"},
		{"float64", args{0.25}, "0.25"},
		{"decimal", args{decimal.RequireFromString("1.05")}, "1.05"},
		{"big int", args{new(big.Int).Lsh(big.NewInt(1), 100)}, "1267650600228229401496703205376"},
		{"slice", args{[]any{1, "a", nil}}, `[1,"a",null]`},
		{"byte slice", args{[]byte{1, 2}}, "[1,2]"},
		{"rune slice", args{[]rune("hi")}, `["h","i"]`},
		{"array", args{[2]bool{true, false}}, "[true,false]"},
		{"map sorted keys", args{map[string]int{"b": 2, "a": 1}}, `{"a":1,"b":2}`},
		{"map coerced keys", args{map[int]string{2: "b", 10: "a"}}, `{"10":"a","2":"b"}`},
		{"nested", args{map[string]any{"x": []int{1}}}, `{"x":[1]}`},
		{"stringer fallback", args{struct{ A int }{7}}, `"{7}"`},
		{"element identity", args{NewString("s")}, `"s"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Of(tt.args.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.String())
		})
	}
}

func TestOfNamedPrimitives(t *testing.T) {
	type (
		age     int
		ratio   float64
		flag    bool
		label   string
		counter uint64
	)
	type args struct {
		v any
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{"named int", args{age(5)}, "5"},
		{"named float", args{ratio(0.5)}, "0.5"},
		{"named bool", args{flag(true)}, "true"},
		{"named string", args{label("hey")}, `"hey"`},
		{"named uint64", args{counter(math.MaxUint64)}, "18446744073709551615"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Of(tt.args.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.String())
		})
	}

	// a named float still has to be finite
	type temp float64
	_, err := Of(temp(math.Inf(1)))
	var convErr *ConversionError
	assert.ErrorAs(t, err, &convErr)

	// named numbers are Numbers, not their text forms
	e, err := Of(age(5))
	require.NoError(t, err)
	assert.Equal(t, TypeNumber, e.Type())
}

func TestOfPointers(t *testing.T) {
	n := 5
	e, err := Of(&n)
	require.NoError(t, err)
	assert.Equal(t, "5", e.String())

	var p *int
	e, err = Of(p)
	require.NoError(t, err)
	assert.True(t, e.IsNull())
}

func TestOfRejects(t *testing.T) {
	type args struct {
		v any
	}
	tests := []struct {
		name string
		args args
	}{
		{"nan", args{math.NaN()}},
		{"positive inf", args{math.Inf(1)}},
		{"nan float32", args{float32(math.NaN())}},
		{"channel", args{make(chan int)}},
		{"func", args{func() {}}},
		{"nan inside slice", args{[]any{1, math.NaN()}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Of(tt.args.v)
			var convErr *ConversionError
			assert.ErrorAs(t, err, &convErr)
		})
	}
}

func TestOfOrderedMap(t *testing.T) {
	m := linkedhashmap.New()
	m.Put("z", 26)
	m.Put("a", 1)
	m.Put("m", 13)

	e, err := Of(m)
	require.NoError(t, err)
	// insertion order survives, unlike plain Go maps
	assert.Equal(t, `{"z":26,"a":1,"m":13}`, e.String())
}

func TestOfAccessor(t *testing.T) {
	e, err := Of(newPointAccessor(1, 2))
	require.NoError(t, err)
	assert.Equal(t, `{"x":1,"y":2}`, e.String())
}

func TestRegistry(t *testing.T) {
	type celsius float64

	r := NewRegistry()
	r.Register(celsius(0), func(v any) (Element, error) {
		return NewString("temperature"), nil
	})

	e, err := r.Of(celsius(21.5))
	require.NoError(t, err)
	assert.Equal(t, `"temperature"`, e.String())

	// converters apply at every nesting level
	e, err = r.Of([]any{celsius(1), 2})
	require.NoError(t, err)
	assert.Equal(t, `["temperature",2]`, e.String())

	// unregistered types keep the built-in behavior
	e, err = r.Of(3.5)
	require.NoError(t, err)
	assert.Equal(t, "3.5", e.String())
}

func TestRegistryOverridesBuiltin(t *testing.T) {
	r := NewRegistry()
	r.Register("", func(v any) (Element, error) {
		return NewString("redacted"), nil
	})
	e, err := r.Of("secret")
	require.NoError(t, err)
	assert.Equal(t, `"redacted"`, e.String())
}

func TestOfRaw(t *testing.T) {
	// Raw output of a converted value converts back to an equal element
	in := map[string]any{"a": []any{1, true, nil}, "b": "x"}
	e, err := Of(in)
	require.NoError(t, err)
	back, err := Of(e.Raw())
	require.NoError(t, err)
	assert.True(t, e.Equal(back))
}
