package dictology

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"

	"github.com/viant/dictology/classify"
	"github.com/viant/dictology/conv"
	"github.com/viant/dictology/resolver"
)

var mapType = reflect.TypeOf(map[string]interface{}{})

var basicTypes = map[reflect.Kind]reflect.Type{
	reflect.Int:    reflect.TypeOf(int(0)),
	reflect.Int8:   reflect.TypeOf(int8(0)),
	reflect.Int16:  reflect.TypeOf(int16(0)),
	reflect.Int32:  reflect.TypeOf(int32(0)),
	reflect.Int64:  reflect.TypeOf(int64(0)),
	reflect.Uint:   reflect.TypeOf(uint(0)),
	reflect.Uint8:  reflect.TypeOf(uint8(0)),
	reflect.Uint16: reflect.TypeOf(uint16(0)),
	reflect.Uint32: reflect.TypeOf(uint32(0)),
	reflect.Uint64: reflect.TypeOf(uint64(0)),
}

// ToDictionary converts value into dictionary form.
// A value claimed by a converter is delegated to it, other values are expanded member by member.
func ToDictionary(value interface{}, s *Settings) (map[string]interface{}, error) {
	if isNil(value) {
		return nil, fmt.Errorf("%w: instance", ErrMissingArgument)
	}
	s = settingsOrDefault(s)
	rValue := reflect.ValueOf(value)
	encoded, ok, err := s.convert(rValue)
	if err != nil {
		return nil, err
	}
	if !ok {
		return s.expand(rValue)
	}
	result, ok := encoded.(map[string]interface{})
	if !ok {
		return nil, conv.NewError("", value, mapType, fmt.Errorf("converter produced %T", encoded))
	}
	return result, nil
}

// EncodeValue returns dictionary form of a member or element value: a leaf, a converter output or a nested map
func (s *Settings) EncodeValue(value interface{}) (interface{}, error) {
	if isNil(value) {
		return nil, nil
	}
	if rType, ok := value.(reflect.Type); ok {
		return rType.String(), nil
	}
	rValue := reflect.ValueOf(value)
	if classify.IsSimpleValue(value) {
		code, _ := classify.Of(rValue.Type())
		return s.leaf(rValue, code), nil
	}
	switch rValue.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil, conv.NewError("", value, mapType, nil)
	}
	encoded, ok, err := s.convert(rValue)
	if ok || err != nil {
		return encoded, err
	}
	result, err := s.expand(rValue)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// convert delegates value to the first converter claiming its type, pointers are dereferenced until a converter matches
func (s *Settings) convert(value reflect.Value) (interface{}, bool, error) {
	for {
		if converter, ok := s.converters.Match(value.Type()); ok {
			s.logger.Debug("delegating to converter", "type", value.Type().String())
			encoded, err := converter.Encode(value.Interface(), s)
			return encoded, true, err
		}
		if value.Kind() != reflect.Ptr || value.IsNil() {
			return nil, false, nil
		}
		value = value.Elem()
	}
}

func (s *Settings) expand(value reflect.Value) (map[string]interface{}, error) {
	holder := value
	for holder.Kind() == reflect.Ptr {
		if holder.IsNil() {
			return nil, fmt.Errorf("%w: nil %v", ErrMissingArgument, value.Type())
		}
		holder = holder.Elem()
	}
	if holder.Kind() != reflect.Struct {
		return nil, conv.NewError("", value.Interface(), mapType, nil)
	}
	members, err := s.resolver.Members(holder.Type())
	if err != nil {
		return nil, err
	}
	result := make(map[string]interface{}, len(members))
	for _, member := range members {
		key, err := s.resolver.MemberName(member)
		if err != nil {
			return nil, err
		}
		memberValue, err := s.resolver.MemberValue(member, holder)
		if errors.Is(err, resolver.ErrUnreachable) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if result[key], err = s.EncodeValue(memberValue); err != nil {
			return nil, conv.WithKey(err, key)
		}
	}
	return result, nil
}

func (s *Settings) leaf(value reflect.Value, code classify.Code) interface{} {
	switch code {
	case classify.BigInt:
		if value.Kind() == reflect.Ptr {
			return value.Interface()
		}
		b := value.Interface().(big.Int)
		return new(big.Int).Set(&b)
	case classify.Decimal:
		if value.Kind() == reflect.Ptr {
			return value.Interface()
		}
		f := value.Interface().(big.Float)
		return new(big.Float).Copy(&f)
	}
	for value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if classify.IsEnum(value.Type()) {
		if s.enumHandling == EnumAsName {
			if name, ok := conv.EnumName(value); ok {
				return name
			}
		}
		return value.Convert(basicTypes[value.Kind()]).Interface()
	}
	return value.Interface()
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rValue.IsNil()
	}
	return false
}
