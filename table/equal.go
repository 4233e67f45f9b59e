package table

import (
	"reflect"

	"github.com/viant/watchable/conv"
)

// Equal compares two values deeply.
// Tables and raw maps, slices and arrays are compared by content, numbers across kinds by value,
// pointers by identity.
func Equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ta, ok := a.(*Table); ok {
		tb, ok := b.(*Table)
		return ok && ta.Equal(tb)
	}
	aValue := reflect.ValueOf(a)
	bValue := reflect.ValueOf(b)
	if aValue.Type() != bValue.Type() {
		if conv.IsNumeric(a) && conv.IsNumeric(b) {
			c, err := conv.Compare(a, b)
			return err == nil && c == 0
		}
		return false
	}
	switch aValue.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return reflect.DeepEqual(a, b)
	}
	if aValue.Type().Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// Equal returns true if both tables hold equal entries, keyed part order is ignored
func (t *Table) Equal(other *Table) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if len(t.list) != len(other.list) || len(t.keys) != len(other.keys) {
		return false
	}
	for i, value := range t.list {
		if !Equal(value, other.list[i]) {
			return false
		}
	}
	for _, key := range t.keys {
		value, ok := other.fields[key]
		if !ok || !Equal(t.fields[key], value) {
			return false
		}
	}
	return true
}
