package conv

import (
	"errors"
	"reflect"

	"github.com/viant/dictology/classify"
	"golang.org/x/text/language"
)

// Options contains configuration for the coercer
type Options struct {
	// Culture controls numeric text parsing and formatting
	Culture language.Tag
	// Adapters are consulted when no built-in rule applies
	Adapters []TypeAdapter
}

// DefaultOptions returns default coercion options
func DefaultOptions() Options {
	return Options{Culture: language.Und}
}

// Coercer converts values between compatible native representations
type Coercer struct {
	options Options
	culture *Culture
}

// NewCoercer creates a coercer with the provided options
func NewCoercer(options Options) *Coercer {
	return &Coercer{
		options: options,
		culture: CultureOf(options.Culture),
	}
}

// Culture returns coercer numeric text conventions
func (c *Coercer) Culture() *Culture {
	return c.culture
}

// Convert converts the source value into the destination pointer
func (c *Coercer) Convert(src interface{}, dest interface{}) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr || destValue.IsNil() {
		return errors.New("destination must be a non nil pointer")
	}
	if src == nil {
		return nil
	}
	value, err := c.Coerce(src, destValue.Elem().Type())
	if err != nil {
		return err
	}
	destValue.Elem().Set(value)
	return nil
}

// Coerce converts value to target type or returns conversion error
func (c *Coercer) Coerce(value interface{}, target reflect.Type) (reflect.Value, error) {
	result, ok, err := c.TryCoerce(value, target)
	if err != nil {
		return reflect.Value{}, err
	}
	if !ok {
		return reflect.Value{}, NewError("", value, target, nil)
	}
	return result, nil
}

// TryCoerce converts value to target type.
// It returns ok=false with nil error when no rule applies, and an error when a matching rule failed.
func (c *Coercer) TryCoerce(value interface{}, target reflect.Type) (reflect.Value, bool, error) {
	if value == nil || target == nil {
		return reflect.Value{}, false, nil
	}
	src := reflect.ValueOf(value)
	if src.Type() == target {
		return src, true, nil
	}
	if target.Kind() == reflect.Ptr {
		inner, ok, err := c.TryCoerce(value, target.Elem())
		if !ok || err != nil {
			return reflect.Value{}, ok, err
		}
		ptr := reflect.New(target.Elem())
		ptr.Elem().Set(inner)
		return ptr, true, nil
	}
	if target.Kind() == reflect.Interface && src.Type().Implements(target) {
		holder := reflect.New(target).Elem()
		holder.Set(src)
		return holder, true, nil
	}
	if rType, ok := value.(reflect.Type); ok && target.Kind() == reflect.String {
		return textValue(rType.String(), target), true, nil
	}
	if src.Kind() == reflect.Ptr {
		if src.IsNil() {
			return reflect.Value{}, false, nil
		}
		src = src.Elem()
		if src.Type() == target {
			return src, true, nil
		}
	}
	srcCode, _ := classify.Of(src.Type())
	dstCode, _ := classify.Of(target)
	if target.Kind() == reflect.Interface && dstCode != classify.TypeRef {
		return c.adapt(src, target)
	}
	if classify.IsPrimitive(srcCode) && classify.IsPrimitive(dstCode) {
		result, err := c.convertPrimitive(src, target)
		if err != nil {
			return reflect.Value{}, false, NewError("", value, target, err)
		}
		return result, true, nil
	}
	result, ok, err := c.bridge(src, srcCode, target, dstCode)
	if ok || err != nil {
		return result, ok, wrapError(err, value, target)
	}
	if result, ok, err = c.bridgeArbitrary(src, srcCode, target, dstCode); ok || err != nil {
		return result, ok, wrapError(err, value, target)
	}
	return c.adapt(src, target)
}

func wrapError(err error, value interface{}, target reflect.Type) error {
	if err == nil {
		return nil
	}
	var convErr *Error
	if errors.As(err, &convErr) {
		return err
	}
	return NewError("", value, target, err)
}

func textValue(text string, target reflect.Type) reflect.Value {
	result := reflect.New(target).Elem()
	result.SetString(text)
	return result
}
