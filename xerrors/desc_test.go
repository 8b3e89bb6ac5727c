package xerrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDesc(t *testing.T) {
	type args struct {
		err error
	}
	tests := []struct {
		name       string
		args       args
		wantReason string
	}{
		{
			name: "general error",
			args: args{
				err: ErrorKV("string is not terminated",
					KeyFile, "doc.json",
					KeyPos, 7),
			},
			wantReason: "string is not terminated",
		},
		{
			name: "no fields",
			args: args{
				err: Errorf("plain failure"),
			},
			wantReason: "plain failure",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDesc(tt.args.err)
			assert.NotNil(t, got)
			assert.Equal(t, tt.wantReason, got.Reason())
			t.Logf("%s: %s", tt.name, got)
			t.Logf("debug:\n%s", got.DebugString())
		})
	}
}

func TestDescDebugString(t *testing.T) {
	err := ErrorKV("unexpected end",
		KeyFile, "broken.json",
		KeyPos, 42,
		KeyEncoding, "UTF-8")
	d := NewDesc(err)
	s := d.DebugString()
	assert.Contains(t, s, "File: broken.json")
	assert.Contains(t, s, "Pos: 42")
	assert.Contains(t, s, "Encoding: UTF-8")
}
