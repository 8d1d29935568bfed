package visitor

import (
	"fmt"
	"reflect"
)

// SliceVisitorOf creates a Visitor for slices and arrays
func SliceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []interface{}:
		return TypedSliceVisitorOf[interface{}](actual), nil
	case []string:
		return TypedSliceVisitorOf[string](actual), nil
	case []int:
		return TypedSliceVisitorOf[int](actual), nil
	case []int64:
		return TypedSliceVisitorOf[int64](actual), nil
	case []float64:
		return TypedSliceVisitorOf[float64](actual), nil
	case []bool:
		return TypedSliceVisitorOf[bool](actual), nil
	}
	val := reflect.ValueOf(value)
	for val.Kind() == reflect.Ptr && !val.IsNil() {
		val = val.Elem()
	}
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	return func(f func(key int, element any) (bool, error)) error {
		for i := 0; i < val.Len(); i++ {
			continueVisit, err := f(i, val.Index(i).Interface())
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

// TypedSliceVisitorOf returns visitor of typed slice
func TypedSliceVisitorOf[E any](slice []E) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
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
