package visitor

import (
	"reflect"

	"github.com/viant/watchable/conv"
)

// Visitor is an interface that Visits over pairs of (key, element).
// The Visit method calls the provided callback for each pair.
// If the callback returns (false, nil), the Visit stops.
// If the callback returns an error, the Visit stops and returns that error.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error

// IsStructured returns true for maps, slices, arrays, structs and pointers to structs.
// Byte slices and time values are treated as scalars.
func IsStructured(value interface{}) bool {
	if value == nil {
		return false
	}
	rType := reflect.TypeOf(value)
	if conv.IsTime(rType) {
		return false
	}
	switch rType.Kind() {
	case reflect.Map, reflect.Array, reflect.Struct:
		return true
	case reflect.Slice:
		return rType.Elem().Kind() != reflect.Uint8
	case reflect.Ptr:
		if rType.Elem().Kind() != reflect.Struct {
			return false
		}
		return !reflect.ValueOf(value).IsNil()
	}
	return false
}

// AnyOf returns a visitor for any structured value.
// Slice and array keys are int positions, map keys are map keys, struct keys are field names.
func AnyOf(value interface{}, opts ...Option) (Visitor[any, any], bool) {
	if !IsStructured(value) {
		return nil, false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Map:
		visit, err := AnyMapVisitorOf(value)
		return visit, err == nil
	case reflect.Slice, reflect.Array:
		visit, err := AnySliceVisitorOf(value)
		if err != nil {
			return nil, false
		}
		return func(f func(key any, element any) (bool, error)) error {
			return visit(func(key int, element any) (bool, error) {
				return f(key, element)
			})
		}, true
	}
	visit, err := StructVisitorOf(value, opts...)
	if err != nil {
		return nil, false
	}
	return func(f func(key any, element any) (bool, error)) error {
		return visit(func(key string, element interface{}) (bool, error) {
			return f(key, element)
		})
	}, true
}
