package visitor

import (
	"fmt"
	"reflect"
	"strconv"
)

// IndexVisitorOf creates a Visitor over an index keyed map ("0".."n-1") or a slice,
// elements are visited in index order. It returns number of elements.
func IndexVisitorOf(value interface{}) (Visitor[int, any], int, error) {
	switch actual := value.(type) {
	case []interface{}:
		return TypedSliceVisitorOf[interface{}](actual), len(actual), nil
	case map[string]interface{}:
		elements := make([]interface{}, len(actual))
		for key, element := range actual {
			index, err := indexOf(key, len(actual))
			if err != nil {
				return nil, 0, err
			}
			elements[index] = element
		}
		return TypedSliceVisitorOf[interface{}](elements), len(elements), nil
	}
	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		visitor, err := SliceVisitorOf(value)
		return visitor, val.Len(), err
	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return nil, 0, fmt.Errorf("expected string keyed map, got %T", value)
		}
		elements := make([]interface{}, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			index, err := indexOf(iter.Key().String(), val.Len())
			if err != nil {
				return nil, 0, err
			}
			elements[index] = iter.Value().Interface()
		}
		return TypedSliceVisitorOf[interface{}](elements), len(elements), nil
	}
	return nil, 0, fmt.Errorf("expected index keyed map or slice, got %T", value)
}

func indexOf(key string, size int) (int, error) {
	index, err := strconv.Atoi(key)
	if err != nil || index < 0 || index >= size || strconv.Itoa(index) != key {
		return 0, fmt.Errorf("invalid sequence index %q, expected 0..%d", key, size-1)
	}
	return index, nil
}
