package parser

import "fmt"

// ParseError reports a JSON grammar violation. Pos is the 0-based character
// offset into Input when the source supports random access (string parsing),
// or -1 when it does not (reader parsing).
type ParseError struct {
	Msg   string
	Pos   int
	Input string
}

func (e *ParseError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("[%d]: %s : %s", e.Pos, e.Msg, e.Input)
	}
	return e.Msg
}

// IOError reports a read failure of the underlying reader. It is distinct
// from ParseError: the input may well be valid JSON. The wrapped error is
// passed through unchanged and reachable via Unwrap.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return "read failed: " + e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }
