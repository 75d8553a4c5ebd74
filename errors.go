package bindata

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Every failure the engine raises wraps exactly one
// of these so callers can dispatch with errors.Is, while still getting
// structured detail via errors.As on the concrete wrapper types below.
var (
	ErrUnRegisteredType    = errors.New("bindata: type not registered")
	ErrArgument            = errors.New("bindata: invalid parameter")
	ErrName                = errors.New("bindata: invalid field name")
	ErrSyntax              = errors.New("bindata: malformed schema")
	ErrEndOfStream         = errors.New("bindata: end of stream")
	ErrSeek                = errors.New("bindata: invalid seek")
	ErrValidity            = errors.New("bindata: validity check failed")
	ErrAssert              = errors.New("bindata: assertion failed")
	ErrUnexpectedChoiceKey = errors.New("bindata: unexpected choice key")
	ErrRecursiveEvaluation = errors.New("bindata: recursive evaluation")
)

// ArgumentError reports a ParamSpec sanitization failure: a missing
// mandatory parameter, an unknown parameter name, two mutually exclusive
// parameters both supplied, or a nil parameter value.
type ArgumentError struct {
	Class string
	Param string
	Msg   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("bindata: %s: parameter %q: %s", e.Class, e.Param, e.Msg)
}

func (e *ArgumentError) Unwrap() error { return ErrArgument }

// NameError reports a reserved, duplicate, or shadowing field name within
// a Struct/Record.
type NameError struct {
	Struct string
	Field  string
	Msg    string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("bindata: %s.%s: %s", e.Struct, e.Field, e.Msg)
}

func (e *NameError) Unwrap() error { return ErrName }

// EndOfStreamError reports a short read: fewer bytes or bits remained than
// the operation required.
type EndOfStreamError struct {
	Wanted, Got int
}

func (e *EndOfStreamError) Error() string {
	return fmt.Sprintf("bindata: end of stream: wanted %d bytes, got %d", e.Wanted, e.Got)
}

func (e *EndOfStreamError) Unwrap() error { return ErrEndOfStream }

// SeekError reports an unsupported seek: backward on an unseekable stream,
// or past the end of a seekable one.
type SeekError struct {
	Offset int64
	Msg    string
}

func (e *SeekError) Error() string {
	return fmt.Sprintf("bindata: seek to %d: %s", e.Offset, e.Msg)
}

func (e *SeekError) Unwrap() error { return ErrSeek }

// ValidityError reports a failed :check_value, :check_offset, or
// :adjust_offset.
type ValidityError struct {
	Path     string
	Expected any
	Actual   any
}

func (e *ValidityError) Error() string {
	return fmt.Sprintf("bindata: %s: validity check failed: expected %v, got %v", e.Path, e.Expected, e.Actual)
}

func (e *ValidityError) Unwrap() error { return ErrValidity }

// AssertError reports a :assert closure that returned false or an error.
type AssertError struct {
	Path   string
	Reason string
}

func (e *AssertError) Error() string {
	return fmt.Sprintf("bindata: %s: assertion failed: %s", e.Path, e.Reason)
}

func (e *AssertError) Unwrap() error { return ErrAssert }

// UnexpectedChoiceKeyError reports a Choice selector with no matching
// child and no declared "default" key.
type UnexpectedChoiceKeyError struct {
	Path string
	Key  any
}

func (e *UnexpectedChoiceKeyError) Error() string {
	return fmt.Sprintf("bindata: %s: no choice child for selector %v", e.Path, e.Key)
}

func (e *UnexpectedChoiceKeyError) Unwrap() error { return ErrUnexpectedChoiceKey }

// RecursiveEvaluationError reports a dependency cycle detected while
// resolving an Expression.
type RecursiveEvaluationError struct {
	Path string
}

func (e *RecursiveEvaluationError) Error() string {
	return fmt.Sprintf("bindata: %s: recursive evaluation detected", e.Path)
}

func (e *RecursiveEvaluationError) Unwrap() error { return ErrRecursiveEvaluation }

// UnRegisteredTypeError reports a lookup miss in the Registry.
type UnRegisteredTypeError struct {
	Name      string
	Endian    string
	Namespace string
}

func (e *UnRegisteredTypeError) Error() string {
	if e.Namespace != "" {
		return fmt.Sprintf("bindata: type %q not registered (endian=%s, namespace=%s)", e.Name, e.Endian, e.Namespace)
	}
	return fmt.Sprintf("bindata: type %q not registered (endian=%s)", e.Name, e.Endian)
}

func (e *UnRegisteredTypeError) Unwrap() error { return ErrUnRegisteredType }

// SyntaxError reports structural misuse of the schema construction API,
// e.g. a Choice declared with some children named and some positional.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string { return "bindata: " + e.Msg }

func (e *SyntaxError) Unwrap() error { return ErrSyntax }
