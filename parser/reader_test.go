package parser

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/yuantj/minijson/element"
)

var parityInputs = []string{
	"null",
	"true",
	"false",
	"0",
	"-12.5e3",
	`""`,
	`"héllo é 😀"`,
	"{}",
	"[]",
	`{"a":1,"b":[true,null,"x"],"c":{"d":[]}}`,
	" \t {\n\"k\" : [ 1 , 2 ]\r} ",
}

var parityBadInputs = []string{
	"",
	"   ",
	"hello",
	`{"a":}`,
	"[1,2",
	`"abc`,
	`"\x"`,
	"1e+",
	"trye",
	"tru",
	"{} {}",
}

// the two source adapters must accept and reject exactly the same inputs,
// producing the same values and the same messages
func TestReaderStringParity(t *testing.T) {
	for _, input := range parityInputs {
		t.Run(input, func(t *testing.T) {
			fromString, err := ParseString(input)
			require.NoError(t, err)
			fromReader, err := ParseReader(strings.NewReader(input))
			require.NoError(t, err)
			assert.True(t, fromString.Equal(fromReader))
		})
	}
	for _, input := range parityBadInputs {
		t.Run("bad "+input, func(t *testing.T) {
			_, strErr := ParseString(input)
			_, rdErr := ParseReader(strings.NewReader(input))
			var sp, rp *ParseError
			require.ErrorAs(t, strErr, &sp)
			require.ErrorAs(t, rdErr, &rp)
			assert.Equal(t, sp.Msg, rp.Msg)
			// only the string adapter has random access
			assert.GreaterOrEqual(t, sp.Pos, 0)
			assert.Equal(t, -1, rp.Pos)
			assert.Empty(t, rp.Input)
			assert.Equal(t, rp.Msg, rp.Error())
		})
	}
}

// failingReader yields its payload, then a read failure instead of EOF.
type failingReader struct {
	payload string
	err     error
	off     int
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.off >= len(r.payload) {
		return 0, r.err
	}
	n := copy(p, r.payload[r.off:])
	r.off += n
	return n, nil
}

func TestReaderIOError(t *testing.T) {
	broken := errors.New("connection reset")
	tests := []struct {
		name    string
		payload string
	}{
		{"fails immediately", ""},
		{"fails inside value", `{"a": [1, 2`},
		{"fails inside string", `"abc`},
		{"fails inside literal", "tr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReader(&failingReader{payload: tt.payload, err: broken})
			var ioErr *IOError
			require.ErrorAs(t, err, &ioErr)
			assert.ErrorIs(t, err, broken, "the reader's error must pass through unchanged")
			var pErr *ParseError
			assert.False(t, errors.As(err, &pErr), "a read failure is not a parse error")
		})
	}
}

func TestReaderDoesNotOverread(t *testing.T) {
	// a document followed by unrelated bytes is a trailing-content error,
	// never a panic or a hang
	_, err := ParseReader(strings.NewReader("1 2"))
	var pErr *ParseError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "can only have one top-level JSON value", pErr.Msg)
}

func TestConcurrentReaders(t *testing.T) {
	// parser instances are single-use, but independent parses must be safe
	// to run in parallel and shared result elements safe to read
	shared := `[{"id":1,"tags":["a","b"]},{"id":2,"tags":[]}]`
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			e, err := ParseReader(strings.NewReader(shared))
			if err != nil {
				return err
			}
			s, err := element.Marshal(e)
			if err != nil {
				return err
			}
			if s != shared {
				return errors.New("unexpected rendering: " + s)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestParseReaderRuneReader(t *testing.T) {
	// an input that already implements io.RuneReader is used directly
	var rr io.RuneReader = strings.NewReader(`"direct"`)
	e, err := ParseReader(rr.(io.Reader))
	require.NoError(t, err)
	s, err := e.StringValue()
	require.NoError(t, err)
	assert.Equal(t, "direct", s)
}
