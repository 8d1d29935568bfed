package dictology

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/viant/dictology/conv"
)

// Converter encodes a type to dictionary form and decodes it back, bypassing member expansion
type Converter interface {
	// CanConvert returns true if converter claims t
	CanConvert(t reflect.Type) bool
	// Encode returns dictionary form of value, either a leaf or map[string]interface{}
	Encode(value interface{}, s *Settings) (interface{}, error)
	// Decode returns value of type t decoded from dictionary form
	Decode(value interface{}, t reflect.Type, s *Settings) (interface{}, error)
}

// NativeConverter converts T to and from a single leaf value
type NativeConverter[T any] struct {
	to   func(value T, s *Settings) (interface{}, error)
	from func(value interface{}, s *Settings) (T, error)
}

// CanConvert returns true if t is T or implements interface T
func (c *NativeConverter[T]) CanConvert(t reflect.Type) bool {
	return claims[T](t)
}

// Encode encodes value
func (c *NativeConverter[T]) Encode(value interface{}, s *Settings) (interface{}, error) {
	actual, ok := value.(T)
	if !ok {
		return nil, conv.NewError("", value, reflect.TypeOf((*T)(nil)).Elem(), nil)
	}
	return c.to(actual, s)
}

// Decode decodes value
func (c *NativeConverter[T]) Decode(value interface{}, t reflect.Type, s *Settings) (interface{}, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: value of %v", ErrMissingArgument, t)
	}
	return c.from(value, s)
}

// NewNativeConverter creates leaf converter
func NewNativeConverter[T any](to func(value T, s *Settings) (interface{}, error), from func(value interface{}, s *Settings) (T, error)) *NativeConverter[T] {
	return &NativeConverter[T]{to: to, from: from}
}

// MemberConverter converts T to and from a map
type MemberConverter[T any] struct {
	to   func(value T, s *Settings) (map[string]interface{}, error)
	from func(value map[string]interface{}, s *Settings) (T, error)
}

// CanConvert returns true if t is T or implements interface T
func (c *MemberConverter[T]) CanConvert(t reflect.Type) bool {
	return claims[T](t)
}

// Encode encodes value
func (c *MemberConverter[T]) Encode(value interface{}, s *Settings) (interface{}, error) {
	actual, ok := value.(T)
	if !ok {
		return nil, conv.NewError("", value, reflect.TypeOf((*T)(nil)).Elem(), nil)
	}
	return c.to(actual, s)
}

// Decode decodes value
func (c *MemberConverter[T]) Decode(value interface{}, t reflect.Type, s *Settings) (interface{}, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: value of %v", ErrMissingArgument, t)
	}
	aMap, ok := value.(map[string]interface{})
	if !ok {
		return nil, conv.NewError("", value, t, nil)
	}
	return c.from(aMap, s)
}

// NewMemberConverter creates map converter
func NewMemberConverter[T any](to func(value T, s *Settings) (map[string]interface{}, error), from func(value map[string]interface{}, s *Settings) (T, error)) *MemberConverter[T] {
	return &MemberConverter[T]{to: to, from: from}
}

func claims[T any](t reflect.Type) bool {
	if t == nil {
		return false
	}
	target := reflect.TypeOf((*T)(nil)).Elem()
	if t == target {
		return true
	}
	return target.Kind() == reflect.Interface && t.Implements(target)
}

// Converters represents ordered converter registry, the first converter claiming a type wins
type Converters struct {
	mux   sync.RWMutex
	items []Converter
}

// Register appends converters
func (c *Converters) Register(converters ...Converter) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.items = append(c.items, converters...)
}

// Prepend inserts converters ahead of registered ones
func (c *Converters) Prepend(converters ...Converter) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.items = append(append(make([]Converter, 0, len(converters)+len(c.items)), converters...), c.items...)
}

// Insert inserts converter at index
func (c *Converters) Insert(index int, converter Converter) error {
	c.mux.Lock()
	defer c.mux.Unlock()
	if index < 0 || index > len(c.items) {
		return fmt.Errorf("converter index %d out of range [0,%d]", index, len(c.items))
	}
	c.items = append(c.items, nil)
	copy(c.items[index+1:], c.items[index:])
	c.items[index] = converter
	return nil
}

// Match returns the first converter claiming t
func (c *Converters) Match(t reflect.Type) (Converter, bool) {
	if t == nil {
		return nil, false
	}
	c.mux.RLock()
	defer c.mux.RUnlock()
	for _, candidate := range c.items {
		if candidate.CanConvert(t) {
			return candidate, true
		}
	}
	return nil, false
}

// Len returns number of registered converters
func (c *Converters) Len() int {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return len(c.items)
}

// NewConverters creates converter registry
func NewConverters(converters ...Converter) *Converters {
	return &Converters{items: converters}
}

// DefaultConverters creates registry with built-in converters:
// dictionary, sequence, offset instant, instant, duration, version, identifier and URI
func DefaultConverters() *Converters {
	return NewConverters(
		DictionaryConverter,
		SequenceConverter,
		OffsetTimeConverter,
		TimeConverter,
		DurationConverter,
		VersionConverter,
		GUIDConverter,
		URIConverter,
	)
}
