package dictology

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/viant/dictology/classify"
	"github.com/viant/dictology/conv"
	"github.com/viant/dictology/resolver"
)

// ToInstance converts dictionary form into T
func ToInstance[T any](m map[string]interface{}, s *Settings) (T, error) {
	var result T
	value, err := ToInstanceOf(m, reflect.TypeOf((*T)(nil)).Elem(), s)
	if err != nil {
		return result, err
	}
	if value != nil {
		result = value.(T)
	}
	return result, nil
}

// ToInstanceOf converts dictionary form into a value of type t.
// A type claimed by a converter is delegated to it, other types are built member by member.
func ToInstanceOf(m map[string]interface{}, t reflect.Type, s *Settings) (interface{}, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: dictionary", ErrMissingArgument)
	}
	if t == nil {
		return nil, fmt.Errorf("%w: target type", ErrMissingArgument)
	}
	s = settingsOrDefault(s)
	value, err := s.decodeComposite(m, t)
	if err != nil {
		return nil, err
	}
	return value.Interface(), nil
}

// DecodeValue returns value of type t decoded from dictionary form.
// Rules are tried in order: coercion, nil assignment, converter, generic container, nested map.
func (s *Settings) DecodeValue(value interface{}, t reflect.Type) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, fmt.Errorf("%w: target type", ErrMissingArgument)
	}
	if isNil(value) {
		if classify.IsNullable(t) {
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, conv.NewError("", nil, t, nil)
	}
	result, ok, err := s.coercer.TryCoerce(value, t)
	if ok || err != nil {
		return result, err
	}
	return s.decodeComposite(value, t)
}

func (s *Settings) decodeComposite(value interface{}, t reflect.Type) (reflect.Value, error) {
	if converter, ok := s.converters.Match(t); ok {
		s.logger.Debug("delegating to converter", "type", t.String())
		decoded, err := converter.Decode(value, t, s)
		if err != nil {
			return reflect.Value{}, err
		}
		return s.assign(decoded, t)
	}
	switch t.Kind() {
	case reflect.Ptr:
		elem, err := s.decodeComposite(value, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	case reflect.Map:
		decoded, err := decodeDictionary(value, t, s)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(decoded), nil
	case reflect.Slice, reflect.Array:
		decoded, err := decodeSequence(value, t, s)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(decoded), nil
	}
	if aMap, ok := value.(map[string]interface{}); ok {
		return s.decodeStruct(aMap, t)
	}
	return reflect.Value{}, conv.NewError("", value, t, nil)
}

func (s *Settings) decodeStruct(m map[string]interface{}, t reflect.Type) (reflect.Value, error) {
	if t.Kind() != reflect.Struct {
		return reflect.Value{}, conv.NewError("", m, t, nil)
	}
	members, err := s.resolver.Members(t)
	if err != nil {
		return reflect.Value{}, err
	}
	instance := reflect.New(t)
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		member, err := s.match(members, key)
		if err != nil {
			return reflect.Value{}, err
		}
		if member == nil {
			if s.unknownKeys == ErrorOnUnknownKeys {
				return reflect.Value{}, conv.NewError(key, m[key], t, errUnknownKey)
			}
			s.logger.Debug("skipping unknown key", "key", key, "type", t.String())
			continue
		}
		if !member.CanSet() {
			s.logger.Debug("skipping read only member", "key", key, "type", t.String())
			continue
		}
		value, err := s.DecodeValue(m[key], member.Type)
		if err != nil {
			return reflect.Value{}, conv.WithKey(err, key)
		}
		if err = member.Set(instance, value); err != nil {
			return reflect.Value{}, fmt.Errorf("failed to set %v.%s: %w", t, member.Name, err)
		}
	}
	return instance.Elem(), nil
}

// match returns the first member whose external or declared name equals key
func (s *Settings) match(members []*resolver.Member, key string) (*resolver.Member, error) {
	for _, member := range members {
		name, err := s.resolver.MemberName(member)
		if err != nil {
			return nil, err
		}
		if name == key || member.Name == key {
			return member, nil
		}
	}
	return nil, nil
}

func (s *Settings) assign(decoded interface{}, t reflect.Type) (reflect.Value, error) {
	if isNil(decoded) {
		if classify.IsNullable(t) {
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, conv.NewError("", decoded, t, nil)
	}
	rValue := reflect.ValueOf(decoded)
	if rValue.Type() == t {
		return rValue, nil
	}
	if rValue.Type().AssignableTo(t) {
		result := reflect.New(t).Elem()
		result.Set(rValue)
		return result, nil
	}
	return s.coercer.Coerce(decoded, t)
}
