package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fastjson"

	"github.com/yuantj/minijson/element"
)

// every rendering this serializer produces must be valid JSON to an
// independent parser
func TestSerializerAgainstFastjson(t *testing.T) {
	inputs := []string{
		"null",
		"true",
		"-0.25",
		"12345678901234567890.123456789",
		`"plain"`,
		`"quotes \" and \\ and \/ and \n"`,
		`"héllo 😀"`,
		"[]",
		"{}",
		`[1,[2,[3,[4]]],"x"]`,
		`{"a":1,"b":{"c":[true,false,null]},"d":"e"}`,
	}
	variants := []struct {
		name string
		opts []element.EncodeOption
	}{
		{"compact", nil},
		{"indent2", []element.EncodeOption{element.WithIndent(2)}},
		{"indent0", []element.EncodeOption{element.WithIndent(0)}},
		{"ascii", []element.EncodeOption{element.WithASCII()}},
		{"ascii indented", []element.EncodeOption{element.WithASCII(), element.WithIndent(4)}},
	}
	for _, input := range inputs {
		v := mustParse(t, input)
		for _, variant := range variants {
			t.Run(variant.name+" "+input, func(t *testing.T) {
				out, err := element.Marshal(v, variant.opts...)
				require.NoError(t, err)
				require.NoError(t, fastjson.Validate(out), "output: %s", out)

				// and both parsers agree on the reparsed value
				again := mustParse(t, out)
				assert.True(t, v.Equal(again))
			})
		}
	}
}

// spot-check that the two parsers extract the same leaves
func TestParserAgainstFastjson(t *testing.T) {
	doc := `{"name":"ada","age":36,"tags":["x","y"],"extra":{"ok":true}}`

	ours := mustParse(t, doc)
	theirs, err := fastjson.Parse(doc)
	require.NoError(t, err)

	name, err := ours.Get("name")
	require.NoError(t, err)
	s, err := name.StringValue()
	require.NoError(t, err)
	assert.Equal(t, string(theirs.GetStringBytes("name")), s)

	age, err := ours.Get("age")
	require.NoError(t, err)
	n, err := element.Int(age)
	require.NoError(t, err)
	assert.Equal(t, theirs.GetInt("age"), n)

	tags, err := ours.Get("tags")
	require.NoError(t, err)
	count, err := tags.Size()
	require.NoError(t, err)
	assert.Equal(t, len(theirs.GetArray("tags")), count)

	assert.Equal(t, theirs.GetBool("extra", "ok"), mustBool(t, ours, "extra", "ok"))
}

func mustBool(t *testing.T, e element.Element, path ...string) bool {
	t.Helper()
	for _, key := range path {
		var err error
		e, err = e.Get(key)
		require.NoError(t, err)
	}
	b, err := e.Bool()
	require.NoError(t, err)
	return b
}
