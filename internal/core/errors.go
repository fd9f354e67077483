package core

import (
	"errors"
	"fmt"
)

var (
	ErrInputParse   = errors.New("input is not a valid integer")
	ErrInvalidValue = errors.New("invalid value")
	ErrEmptyInput   = errors.New("no completion records")
)

// InputParseError reports a supplied value that could not be read as an integer.
type InputParseError struct {
	Field string
	Value string
	Err   error
}

func (e *InputParseError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid integer", e.Field, e.Value)
}

func (e *InputParseError) Unwrap() error {
	return e.Err
}

func (e *InputParseError) Is(target error) bool {
	return target == ErrInputParse
}

// InvalidValueError reports a parseable but semantically invalid value.
type InvalidValueError struct {
	Field  string
	Value  int
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s = %d: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
