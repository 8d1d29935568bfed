package conv

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// Integer represents types usable as enum
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type enumInfo struct {
	names  map[string]string       // underlying value text -> name
	values map[string]reflect.Value // lower case name -> value
}

var enums sync.Map // map[reflect.Type]*enumInfo

var (
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// RegisterEnum registers enum value names, names are matched case insensitively on parse
func RegisterEnum[T Integer](names map[T]string) {
	info := &enumInfo{names: map[string]string{}, values: map[string]reflect.Value{}}
	var rType reflect.Type
	for value, name := range names {
		rValue := reflect.ValueOf(value)
		rType = rValue.Type()
		info.names[enumKey(rValue)] = name
		info.values[strings.ToLower(name)] = rValue
	}
	if rType == nil {
		rType = reflect.TypeOf(*new(T))
	}
	enums.Store(rType, info)
}

func lookupEnum(t reflect.Type) *enumInfo {
	if v, ok := enums.Load(t); ok {
		return v.(*enumInfo)
	}
	return nil
}

func enumKey(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	}
	return strconv.FormatInt(v.Int(), 10)
}

// EnumName returns registered or text marshaled name of enum value
func EnumName(v reflect.Value) (string, bool) {
	if !v.IsValid() {
		return "", false
	}
	if info := lookupEnum(v.Type()); info != nil {
		name, ok := info.names[enumKey(v)]
		return name, ok
	}
	if v.Type().Implements(textMarshalerType) {
		text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err == nil {
			return string(text), true
		}
	}
	return "", false
}

// ParseEnum parses enum value by case insensitive name or underlying value text
func ParseEnum(t reflect.Type, text string) (reflect.Value, error) {
	text = strings.TrimSpace(text)
	if info := lookupEnum(t); info != nil {
		if value, ok := info.values[strings.ToLower(text)]; ok {
			return value, nil
		}
	} else if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		ptr := reflect.New(t)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); err == nil {
			return ptr.Elem(), nil
		}
	}
	result := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(text, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid %v value: %q", t, text)
		}
		result.SetUint(u)
	default:
		i, err := strconv.ParseInt(text, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("invalid %v value: %q", t, text)
		}
		result.SetInt(i)
	}
	return result, nil
}
