package conv

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnsupportedConversion is returned when no rule can produce a value of the requested type
var ErrUnsupportedConversion = errors.New("unsupported conversion")

// Error carries conversion diagnostic context
type Error struct {
	Key    string
	Value  interface{}
	Target reflect.Type
	Err    error
}

// Error returns error message
func (e *Error) Error() string {
	msg := fmt.Sprintf("%v: %v (%T) to %v", ErrUnsupportedConversion, e.Value, e.Value, e.Target)
	if e.Key != "" {
		msg = fmt.Sprintf("key '%s': %s", e.Key, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches ErrUnsupportedConversion
func (e *Error) Is(target error) bool {
	return target == ErrUnsupportedConversion
}

// NewError creates conversion error
func NewError(key string, value interface{}, target reflect.Type, cause error) *Error {
	return &Error{Key: key, Value: value, Target: target, Err: cause}
}

// WithKey returns err annotated with key when err is a conversion error without key
func WithKey(err error, key string) error {
	if convErr, ok := err.(*Error); ok && convErr.Key == "" {
		return &Error{Key: key, Value: convErr.Value, Target: convErr.Target, Err: convErr.Err}
	}
	return err
}
