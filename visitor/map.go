package visitor

import (
	"fmt"
	"reflect"
)

// MapVisitorOf creates a Visitor for any map value
func MapVisitorOf(value interface{}) (Visitor[any, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return TypedMapVisitorOf[string, interface{}](actual), nil
	case map[string]string:
		return TypedMapVisitorOf[string, string](actual), nil
	case map[string]int:
		return TypedMapVisitorOf[string, int](actual), nil
	case map[int]interface{}:
		return TypedMapVisitorOf[int, interface{}](actual), nil
	}
	val := reflect.ValueOf(value)
	for val.Kind() == reflect.Ptr && !val.IsNil() {
		val = val.Elem()
	}
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	return func(f func(key any, element any) (bool, error)) error {
		iter := val.MapRange()
		for iter.Next() {
			continueVisit, err := f(iter.Key().Interface(), iter.Value().Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}, nil
}

// TypedMapVisitorOf returns visitor of typed map
func TypedMapVisitorOf[K comparable, V any](aMap map[K]V) Visitor[any, any] {
	return func(f func(key any, element any) (bool, error)) error {
		for k, e := range aMap {
			continueVisit, err := f(k, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}
