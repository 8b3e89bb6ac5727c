package element

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	type args struct {
		a, b Element
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			name: "same string",
			args: args{NewString("hey"), NewString("hey")},
			want: true,
		},
		{
			name: "different string",
			args: args{NewString("hey"), NewString("ho")},
			want: false,
		},
		{
			name: "number by value not representation",
			args: args{mustNumber(t, "1.10"), mustNumber(t, "1.1")},
			want: true,
		},
		{
			name: "number exponent form",
			args: args{mustNumber(t, "1e2"), mustNumber(t, "100")},
			want: true,
		},
		{
			name: "negative zero equals zero",
			args: args{mustNumber(t, "-0"), mustNumber(t, "0")},
			want: true,
		},
		{
			name: "different kinds",
			args: args{NewString("1"), NewNumberInt64(1)},
			want: false,
		},
		{
			name: "booleans",
			args: args{True, Bool(true)},
			want: true,
		},
		{
			name: "null",
			args: args{Null, Null},
			want: true,
		},
		{
			name: "array order matters",
			args: args{
				NewArray(NewNumberInt64(1), NewNumberInt64(2)),
				NewArray(NewNumberInt64(2), NewNumberInt64(1)),
			},
			want: false,
		},
		{
			name: "array deep equal",
			args: args{
				NewArray(NewArray(True), Null),
				NewArray(NewArray(True), Null),
			},
			want: true,
		},
		{
			name: "object order independent",
			args: args{
				NewObject(
					Member{Key: "a", Value: NewNumberInt64(1)},
					Member{Key: "b", Value: NewNumberInt64(2)},
				),
				NewObject(
					Member{Key: "b", Value: NewNumberInt64(2)},
					Member{Key: "a", Value: NewNumberInt64(1)},
				),
			},
			want: true,
		},
		{
			name: "object extra key",
			args: args{
				NewObject(Member{Key: "a", Value: NewNumberInt64(1)}),
				NewObject(
					Member{Key: "a", Value: NewNumberInt64(1)},
					Member{Key: "b", Value: NewNumberInt64(2)},
				),
			},
			want: false,
		},
		{
			name: "empty containers differ by kind",
			args: args{NewObject(), NewArray()},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.args.a.Equal(tt.args.b))
			assert.Equal(t, tt.want, tt.args.b.Equal(tt.args.a), "Equal must be symmetric")
			if tt.want {
				assert.Equal(t, tt.args.a.Hash(), tt.args.b.Hash(),
					"equal values must hash alike")
			}
		})
	}
}

func TestEqualNil(t *testing.T) {
	assert.False(t, NewString("x").Equal(nil))
	assert.False(t, Null.Equal(nil))
}

func TestHashDistinguishes(t *testing.T) {
	// not guaranteed in general, but these must not collide for the hash
	// to be worth anything
	distinct := []Element{
		Null,
		True,
		False,
		NewString(""),
		NewString("a"),
		NewNumberInt64(0),
		NewNumberInt64(1),
		NewObject(),
		NewArray(),
		NewArray(NewNumberInt64(1)),
		NewObject(Member{Key: "a", Value: NewNumberInt64(1)}),
	}
	seen := make(map[uint64]Element)
	for _, e := range distinct {
		h := e.Hash()
		if prev, ok := seen[h]; ok {
			t.Errorf("hash collision between %s and %s", prev, e)
		}
		seen[h] = e
	}
}

func TestStringRendering(t *testing.T) {
	tests := []struct {
		name string
		in   Element
		want string
	}{
		{"null", Null, "null"},
		{"true", True, "true"},
		{"string", NewString("hi"), `"hi"`},
		{"number trims trailing zeros", mustNumber(t, "1.10"), "1.1"},
		{"object", NewObject(Member{Key: "a", Value: NewArray(True)}), `{"a":[true]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestNumberConstructors(t *testing.T) {
	n, err := NewNumberFloat64(0.5)
	require.NoError(t, err)
	assert.Equal(t, "0.5", n.String())

	_, err = NewNumberFloat64(math.NaN())
	var convErr *ConversionError
	assert.ErrorAs(t, err, &convErr)

	_, err = NewNumberFloat64(math.Inf(1))
	assert.ErrorAs(t, err, &convErr)
}
