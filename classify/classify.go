// Package classify decides whether a type is stored as a dictionary leaf or expanded into a nested map.
package classify

import (
	"math/big"
	"net/url"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/viant/dictology/types"
)

// Code represents type classification code
type Code int

const (
	Empty Code = iota
	Object
	Bool
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	String
	Bytes
	Time
	OffsetTime
	Duration
	Decimal
	BigInt
	GUID
	URI
	Version
	TypeRef
)

var exactTypes = map[reflect.Type]Code{
	reflect.TypeOf([]byte{}):                    Bytes,
	reflect.TypeOf(time.Time{}):                 Time,
	reflect.TypeOf(types.OffsetTime{}):          OffsetTime,
	reflect.TypeOf(time.Duration(0)):            Duration,
	reflect.TypeOf(big.Float{}):                 Decimal,
	reflect.TypeOf(big.Int{}):                   BigInt,
	reflect.TypeOf(uuid.UUID{}):                 GUID,
	reflect.TypeOf(url.URL{}):                   URI,
	reflect.TypeOf(types.Version{}):             Version,
	reflect.TypeOf((*reflect.Type)(nil)).Elem(): TypeRef,
}

var kindCodes = map[reflect.Kind]Code{
	reflect.Bool:    Bool,
	reflect.Int:     Int,
	reflect.Int8:    Int8,
	reflect.Int16:   Int16,
	reflect.Int32:   Int32,
	reflect.Int64:   Int64,
	reflect.Uint:    Uint,
	reflect.Uint8:   Uint8,
	reflect.Uint16:  Uint16,
	reflect.Uint32:  Uint32,
	reflect.Uint64:  Uint64,
	reflect.Float32: Float32,
	reflect.Float64: Float64,
	reflect.String:  String,
}

// Of returns classification code of t and whether t is a nullable wrapper (pointer)
func Of(t reflect.Type) (Code, bool) {
	if t == nil {
		return Empty, true
	}
	nullable := false
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
		nullable = true
	}
	if code, ok := exactTypes[t]; ok {
		return code, nullable || code == Bytes
	}
	if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8 {
		return Bytes, true
	}
	if code, ok := kindCodes[t.Kind()]; ok {
		return code, nullable
	}
	return Object, nullable
}

// IsSimple returns true if t is stored as a dictionary leaf.
// When allowNullable is false, nullable wrappers of simple types are not simple.
func IsSimple(t reflect.Type, allowNullable bool) bool {
	code, nullable := Of(t)
	switch code {
	case Empty:
		return allowNullable
	case Object, Time, OffsetTime, Duration, GUID, URI, Version, TypeRef:
		return false
	}
	if nullable {
		return allowNullable
	}
	return true
}

// IsSimpleValue returns true if value runtime type is simple, nil is simple
func IsSimpleValue(value interface{}) bool {
	return IsSimple(reflect.TypeOf(value), true)
}

// IsPrimitive returns true for boolean, numeric and string codes
func IsPrimitive(code Code) bool {
	return code >= Bool && code <= String
}

// IsInteger returns true for signed and unsigned integer codes
func IsInteger(code Code) bool {
	return code >= Int && code <= Uint64
}

// IsFloat returns true for floating point codes
func IsFloat(code Code) bool {
	return code == Float32 || code == Float64
}

// IsNumeric returns true if value is an integer or floating point number
func IsNumeric(value interface{}) bool {
	code, nullable := Of(reflect.TypeOf(value))
	return !nullable && (IsInteger(code) || IsFloat(code))
}

// IsEnum returns true for named integer types other than well known ones
func IsEnum(t reflect.Type) bool {
	if t == nil || t.Name() == "" || t.PkgPath() == "" {
		return false
	}
	if _, ok := exactTypes[t]; ok {
		return false
	}
	code, nullable := Of(t)
	return !nullable && IsInteger(code)
}

// IsNullable returns true if t accepts nil
func IsNullable(t reflect.Type) bool {
	if t == nil {
		return true
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// Indirect returns type stripped of pointer wrappers
func Indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
