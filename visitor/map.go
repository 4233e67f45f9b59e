package visitor

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/viant/watchable/conv"
)

// MapVisitor holds a map of type map[K]E and implements the Visitor interface.
type MapVisitor[K comparable, E any] struct {
	data map[K]E
}

// MapVisitorOf creates a new MapVisitor for supplied map.
func MapVisitorOf[K comparable, E any](aMap map[K]E) Visitor[K, E] {
	visitor := &MapVisitor[K, E]{data: aMap}
	return visitor.Visit
}

// Visit iterates over the map in key order and calls f for each (key, element).
// - If f returns (true, nil), iteration continues.
// - If f returns (false, nil), iteration stops early.
// - If f returns an error, iteration stops with that error.
func (v *MapVisitor[K, E]) Visit(f func(key K, element E) (bool, error)) error {
	keys := make([]K, 0, len(v.data))
	for k := range v.data {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return lessKey(keys[i], keys[j])
	})
	for _, k := range keys {
		continueVisit, err := f(k, v.data[k])
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// AnyMapVisitorOf dynamically creates a map visitor from any map value.
func AnyMapVisitorOf(value interface{}) (Visitor[any, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return AnyTypedMapVisitorOf[string, interface{}](actual), nil
	case map[interface{}]interface{}:
		return AnyTypedMapVisitorOf[interface{}, interface{}](actual), nil
	case map[int]interface{}:
		return AnyTypedMapVisitorOf[int, interface{}](actual), nil
	case map[string]string:
		return AnyTypedMapVisitorOf[string, string](actual), nil
	case map[string]int:
		return AnyTypedMapVisitorOf[string, int](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	visitor := &AnyMapVisitor{data: val}
	return visitor.Visit, nil
}

// AnyTypedMapVisitorOf returns visitor with erased key and element types
func AnyTypedMapVisitorOf[K comparable, V any](aMap map[K]V) Visitor[any, any] {
	visit := MapVisitorOf(aMap)
	return func(f func(key any, element any) (bool, error)) error {
		return visit(func(key K, element V) (bool, error) {
			return f(key, element)
		})
	}
}

// AnyMapVisitor defines reflection based map visitor
type AnyMapVisitor struct {
	data reflect.Value
}

// Visit iterates over the map via reflection in key order and calls f for each entry.
func (v *AnyMapVisitor) Visit(f func(key any, element any) (bool, error)) error {
	keys := v.data.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return lessKey(keys[i].Interface(), keys[j].Interface())
	})
	for _, key := range keys {
		continueVisit, err := f(key.Interface(), v.data.MapIndex(key).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// lessKey orders integer keys first, then strings, then any other key by its printed form
func lessKey(a, b interface{}) bool {
	ai, aInt := conv.AsInt(a)
	bi, bInt := conv.AsInt(b)
	switch {
	case aInt && bInt:
		return ai < bi
	case aInt != bInt:
		return aInt
	}
	as, aString := a.(string)
	bs, bString := b.(string)
	switch {
	case aString && bString:
		return as < bs
	case aString != bString:
		return aString
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
