package element

import (
	"fmt"
	"strings"
)

// TypeMismatchError reports an accessor invoked against the wrong variant.
type TypeMismatchError struct {
	Found    Type
	Expected []Type
}

func mismatch(found Type, expected ...Type) *TypeMismatchError {
	return &TypeMismatchError{Found: found, Expected: expected}
}

func (e *TypeMismatchError) Error() string {
	names := make([]string, len(e.Expected))
	for i, t := range e.Expected {
		names[i] = t.String()
	}
	return fmt.Sprintf("%s expected, %s found", strings.Join(names, ", "), e.Found)
}

// NotFoundError reports a strict lookup of a key an object does not contain.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("key %s not present", Quote(e.Key, true))
}

// ConversionError reports an Of conversion or ToElement realization that
// cannot produce a value: unsupported input, a non-finite float, or a
// misbehaving Accessor.
type ConversionError struct {
	Reason string
	Err    error
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		if e.Reason == "" {
			return e.Err.Error()
		}
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *ConversionError) Unwrap() error { return e.Err }

// UsageError reports an invalid argument detected eagerly, before any
// traversal or output, such as a negative indent width.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }
