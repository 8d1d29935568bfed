package conv

import (
	"encoding"
	"fmt"
	"reflect"
)

// TypeAdapter converts values of the type it is bound to, to and from other types
type TypeAdapter interface {
	// Type returns bound type
	Type() reflect.Type
	// CanConvertTo returns true if bound type values can be converted to target
	CanConvertTo(target reflect.Type) bool
	// ConvertTo converts bound type value to target
	ConvertTo(value interface{}, target reflect.Type) (interface{}, error)
	// CanConvertFrom returns true if source values can be converted to bound type
	CanConvertFrom(source reflect.Type) bool
	// ConvertFrom converts source value to bound type
	ConvertFrom(value interface{}) (interface{}, error)
}

// Adapter represents function based TypeAdapter between two types
type Adapter[S, D any] struct {
	to   func(S) (D, error)
	from func(D) (S, error)
}

// NewAdapter creates adapter bound to S, to converts S to D, from converts D to S, either can be nil
func NewAdapter[S, D any](to func(S) (D, error), from func(D) (S, error)) *Adapter[S, D] {
	return &Adapter[S, D]{to: to, from: from}
}

// Type returns bound type
func (a *Adapter[S, D]) Type() reflect.Type {
	return reflect.TypeOf((*S)(nil)).Elem()
}

// CanConvertTo returns true if target is D
func (a *Adapter[S, D]) CanConvertTo(target reflect.Type) bool {
	return a.to != nil && target == reflect.TypeOf((*D)(nil)).Elem()
}

// ConvertTo converts S to D
func (a *Adapter[S, D]) ConvertTo(value interface{}, target reflect.Type) (interface{}, error) {
	src, ok := value.(S)
	if !ok {
		return nil, fmt.Errorf("expected %v, got %T", a.Type(), value)
	}
	return a.to(src)
}

// CanConvertFrom returns true if source is D
func (a *Adapter[S, D]) CanConvertFrom(source reflect.Type) bool {
	return a.from != nil && source == reflect.TypeOf((*D)(nil)).Elem()
}

// ConvertFrom converts D to S
func (a *Adapter[S, D]) ConvertFrom(value interface{}) (interface{}, error) {
	src, ok := value.(D)
	if !ok {
		return nil, fmt.Errorf("expected %v, got %T", reflect.TypeOf((*D)(nil)).Elem(), value)
	}
	return a.from(src)
}

func (c *Coercer) adapt(src reflect.Value, target reflect.Type) (reflect.Value, bool, error) {
	srcType := src.Type()
	for _, adapter := range c.options.Adapters {
		if adapter.Type() == srcType && adapter.CanConvertTo(target) {
			out, err := adapter.ConvertTo(src.Interface(), target)
			return adapted(out, err, src, target)
		}
	}
	for _, adapter := range c.options.Adapters {
		if adapter.Type() == target && adapter.CanConvertFrom(srcType) {
			out, err := adapter.ConvertFrom(src.Interface())
			return adapted(out, err, src, target)
		}
	}
	if target.Kind() == reflect.String && srcType.Implements(textMarshalerType) {
		text, err := src.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return reflect.Value{}, false, NewError("", src.Interface(), target, err)
		}
		result := reflect.New(target).Elem()
		result.SetString(string(text))
		return result, true, nil
	}
	if srcType.Kind() == reflect.String && target.Kind() != reflect.Interface && reflect.PointerTo(target).Implements(textUnmarshalerType) {
		ptr := reflect.New(target)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(src.String())); err != nil {
			return reflect.Value{}, false, NewError("", src.Interface(), target, err)
		}
		return ptr.Elem(), true, nil
	}
	return reflect.Value{}, false, nil
}

func adapted(out interface{}, err error, src reflect.Value, target reflect.Type) (reflect.Value, bool, error) {
	if err != nil {
		return reflect.Value{}, false, NewError("", src.Interface(), target, err)
	}
	result := reflect.ValueOf(out)
	if !result.IsValid() || !result.Type().AssignableTo(target) {
		return reflect.Value{}, false, NewError("", src.Interface(), target, fmt.Errorf("adapter returned %T", out))
	}
	if result.Type() != target {
		holder := reflect.New(target).Elem()
		holder.Set(result)
		result = holder
	}
	return result, true, nil
}
