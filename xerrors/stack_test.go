package xerrors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuncname(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", ""},
		{"runtime.main", "main"},
		{"github.com/yuantj/minijson/xerrors.funcname", "funcname"},
		{"funcname", "funcname"},
		{"io.copyBuffer", "copyBuffer"},
		{"main.(*R).Write", "(*R).Write"},
	}
	for _, tt := range tests {
		if got := funcname(tt.name); got != tt.want {
			t.Errorf("funcname(%q): want %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestCallersStackTrace(t *testing.T) {
	st := callers(0).StackTrace()
	assert.NotEmpty(t, st)
	top := fmt.Sprintf("%n", st[0])
	assert.Equal(t, "TestCallersStackTrace", top)
}

func TestFrameFormat(t *testing.T) {
	st := callers(0).StackTrace()
	s := fmt.Sprintf("%v", st[0])
	assert.True(t, strings.HasPrefix(s, "@xerrors/stack_test.go:"), s)
}
