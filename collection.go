package dictology

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/viant/dictology/classify"
	"github.com/viant/dictology/conv"
	"github.com/viant/dictology/visitor"
)

var stringType = reflect.TypeOf("")

var (
	// DictionaryConverter converts map types to and from string keyed maps
	DictionaryConverter Converter = &dictionaryConverter{}
	// SequenceConverter converts slices and arrays to and from index keyed maps
	SequenceConverter Converter = &sequenceConverter{}
)

type dictionaryConverter struct{}

// CanConvert returns true for map types
func (c *dictionaryConverter) CanConvert(t reflect.Type) bool {
	return t.Kind() == reflect.Map
}

// Encode encodes map entries, non string keys are converted to text
func (c *dictionaryConverter) Encode(value interface{}, s *Settings) (interface{}, error) {
	visit, err := visitor.MapVisitorOf(value)
	if err != nil {
		return nil, conv.NewError("", value, mapType, err)
	}
	result := map[string]interface{}{}
	err = visit(func(key, element interface{}) (bool, error) {
		text, err := s.keyText(key)
		if err != nil {
			return false, err
		}
		if _, ok := result[text]; ok {
			return false, conv.NewError(text, value, mapType, fmt.Errorf("duplicate key"))
		}
		encoded, err := s.EncodeValue(element)
		if err != nil {
			return false, conv.WithKey(err, text)
		}
		result[text] = encoded
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Decode decodes map of type t
func (c *dictionaryConverter) Decode(value interface{}, t reflect.Type, s *Settings) (interface{}, error) {
	return decodeDictionary(value, t, s)
}

func (s *Settings) keyText(key interface{}) (string, error) {
	if text, ok := key.(string); ok {
		return text, nil
	}
	value, err := s.coercer.Coerce(key, stringType)
	if err != nil {
		return "", err
	}
	return value.String(), nil
}

func decodeDictionary(value interface{}, t reflect.Type, s *Settings) (interface{}, error) {
	if t.Kind() != reflect.Map {
		return nil, conv.NewError("", value, t, nil)
	}
	if reflect.TypeOf(value) == t {
		return value, nil
	}
	visit, err := visitor.MapVisitorOf(value)
	if err != nil {
		return nil, conv.NewError("", value, t, err)
	}
	result := reflect.MakeMap(t)
	err = visit(func(key, element interface{}) (bool, error) {
		name := fmt.Sprint(key)
		mapKey, err := s.coercer.Coerce(key, t.Key())
		if err != nil {
			return false, conv.WithKey(err, name)
		}
		mapValue, err := s.DecodeValue(element, t.Elem())
		if err != nil {
			return false, conv.WithKey(err, name)
		}
		result.SetMapIndex(mapKey, mapValue)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return result.Interface(), nil
}

type sequenceConverter struct{}

// CanConvert returns true for slice and array types other than well known ones (i.e. uuid.UUID)
func (c *sequenceConverter) CanConvert(t reflect.Type) bool {
	if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
		return false
	}
	code, _ := classify.Of(t)
	return code == classify.Object || code == classify.Bytes
}

// Encode encodes elements under zero based index keys
func (c *sequenceConverter) Encode(value interface{}, s *Settings) (interface{}, error) {
	visit, err := visitor.SliceVisitorOf(value)
	if err != nil {
		return nil, conv.NewError("", value, mapType, err)
	}
	result := map[string]interface{}{}
	err = visit(func(index int, element interface{}) (bool, error) {
		key := strconv.Itoa(index)
		encoded, err := s.EncodeValue(element)
		if err != nil {
			return false, conv.WithKey(err, key)
		}
		result[key] = encoded
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Decode decodes slice or array of type t
func (c *sequenceConverter) Decode(value interface{}, t reflect.Type, s *Settings) (interface{}, error) {
	return decodeSequence(value, t, s)
}

func decodeSequence(value interface{}, t reflect.Type, s *Settings) (interface{}, error) {
	visit, size, err := visitor.IndexVisitorOf(value)
	if err != nil {
		return nil, conv.NewError("", value, t, err)
	}
	var result reflect.Value
	switch t.Kind() {
	case reflect.Slice:
		result = reflect.MakeSlice(t, size, size)
	case reflect.Array:
		if size > t.Len() {
			return nil, conv.NewError("", value, t, fmt.Errorf("%d elements exceed array length %d", size, t.Len()))
		}
		result = reflect.New(t).Elem()
	default:
		return nil, conv.NewError("", value, t, nil)
	}
	err = visit(func(index int, element interface{}) (bool, error) {
		item, err := s.DecodeValue(element, t.Elem())
		if err != nil {
			return false, conv.WithKey(err, strconv.Itoa(index))
		}
		result.Index(index).Set(item)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return result.Interface(), nil
}
