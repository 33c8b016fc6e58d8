package sqltypes

import (
	"errors"
	"fmt"
)

var (
	ErrMalformed      error = errors.New("malformed input")
	ErrLengthMismatch error = errors.New("length mismatch")
	ErrOutOfRange     error = errors.New("value out of range")
	ErrOverflow       error = errors.New("arithmetic overflow")
	ErrDivisionByZero error = errors.New("division by zero")
	ErrColumnType     error = errors.New("column type is not textual")
)

// ParseError reports a failed string decode. Err is one of ErrMalformed,
// ErrLengthMismatch or ErrOutOfRange.
type ParseError struct {
	Type  string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %s", e.Type, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RangeError reports a narrowing conversion whose target is too small.
type RangeError struct {
	Bits int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value too large for uint%d", e.Bits)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// ScanError is returned by Scan implementations.
type ScanError struct {
	Type string
	Src  any
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan %s from %T: %s", e.Type, e.Src, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func parseErr(typ, input string, kind error) error {
	return &ParseError{Type: typ, Input: input, Err: kind}
}
