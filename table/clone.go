package table

import "reflect"

// Clone returns a deep copy of the table; the copy is not frozen.
// Nested tables and raw maps, slices and arrays are copied, pointers are shared.
func (t *Table) Clone() *Table {
	result := &Table{}
	if len(t.list) > 0 {
		result.list = make([]interface{}, len(t.list))
		for i, value := range t.list {
			result.list[i] = Clone(value)
		}
	}
	if len(t.keys) > 0 {
		result.keys = make([]interface{}, len(t.keys))
		copy(result.keys, t.keys)
		result.fields = make(map[interface{}]interface{}, len(t.fields))
		for key, value := range t.fields {
			result.fields[key] = Clone(value)
		}
	}
	return result
}

// Clone returns a deep copy of raw structured value, other values are returned as is
func Clone(value interface{}) interface{} {
	switch actual := value.(type) {
	case nil:
		return nil
	case *Table:
		return actual.Clone()
	case []interface{}:
		result := make([]interface{}, len(actual))
		for i, item := range actual {
			result[i] = Clone(item)
		}
		return result
	case map[string]interface{}:
		result := make(map[string]interface{}, len(actual))
		for k, item := range actual {
			result[k] = Clone(item)
		}
		return result
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return cloneValue(rValue).Interface()
	}
	return value
}

func cloneValue(value reflect.Value) reflect.Value {
	switch value.Kind() {
	case reflect.Interface:
		if value.IsNil() {
			return value
		}
		cloned := cloneValue(value.Elem())
		result := reflect.New(value.Type()).Elem()
		result.Set(cloned)
		return result
	case reflect.Slice:
		if value.IsNil() {
			return value
		}
		result := reflect.MakeSlice(value.Type(), value.Len(), value.Len())
		for i := 0; i < value.Len(); i++ {
			result.Index(i).Set(cloneValue(value.Index(i)))
		}
		return result
	case reflect.Array:
		result := reflect.New(value.Type()).Elem()
		for i := 0; i < value.Len(); i++ {
			result.Index(i).Set(cloneValue(value.Index(i)))
		}
		return result
	case reflect.Map:
		if value.IsNil() {
			return value
		}
		result := reflect.MakeMapWithSize(value.Type(), value.Len())
		iter := value.MapRange()
		for iter.Next() {
			result.SetMapIndex(iter.Key(), cloneValue(iter.Value()))
		}
		return result
	}
	return value
}
