package abicodec

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying each failure kind. Every error returned by the
// codec matches exactly one of these with errors.Is.
var (
	// ErrInvalidType indicates an unparseable or unsupported type descriptor.
	ErrInvalidType = errors.New("abicodec: invalid type")

	// ErrOutOfRange indicates a numeric value outside the representable range of its type.
	ErrOutOfRange = errors.New("abicodec: value out of range")

	// ErrInvalidBytesLength indicates a fixed-size byte value of the wrong length.
	ErrInvalidBytesLength = errors.New("abicodec: invalid bytes length")

	// ErrBufferOverrun indicates a declared length, offset or count exceeds the available input.
	ErrBufferOverrun = errors.New("abicodec: buffer overrun")

	// ErrInvalidUTF8 indicates a decoded string is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("abicodec: invalid utf-8")

	// ErrArityMismatch indicates the number of values does not match the number of types.
	ErrArityMismatch = errors.New("abicodec: arity mismatch")

	// ErrInvalidValue indicates a Go value whose shape cannot represent the type.
	ErrInvalidValue = errors.New("abicodec: invalid value")

	// ErrSelectorMismatch indicates call data does not start with the method selector.
	ErrSelectorMismatch = errors.New("abicodec: selector mismatch")
)

// CodecError is returned at the point a failure is detected.
// Kind is one of the sentinel errors above.
type CodecError struct {
	Kind   error
	Type   string
	Detail string
}

func (e *CodecError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%v: %s: %s", e.Kind, e.Type, e.Detail)
}

func (e *CodecError) Unwrap() error {
	return e.Kind
}

func newError(kind error, t ParamType, format string, args ...any) *CodecError {
	name := ""
	if t != nil {
		name = t.String()
	}
	return &CodecError{Kind: kind, Type: name, Detail: fmt.Sprintf(format, args...)}
}

// ArgumentError indicates an issue with a method argument or return value.
type ArgumentError struct {
	Method string
	Index  int
	Err    error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("abicodec: argument %d for method %q: %v", e.Index, e.Method, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
