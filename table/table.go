package table

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/watchable/conv"
)

var (
	//ErrFrozen is returned by every structural change of a frozen table
	ErrFrozen = errors.New("table is frozen")
	//ErrOutOfRange is returned for positions outside of the list part
	ErrOutOfRange = errors.New("position out of range")
	//ErrInvalidKey is returned for nil keys
	ErrInvalidKey = errors.New("invalid key")
	//ErrNotComparable is returned for keys that cannot be hashed
	ErrNotComparable = errors.New("key is not comparable")
)

type (
	//Table represents an ordered and keyed structure.
	//Integer keys 0..n-1 live in the list part, every other key lives in the keyed part
	//which keeps insertion order.
	Table struct {
		list   []interface{}
		keys   []interface{}
		fields map[interface{}]interface{}
		frozen bool
	}
)

// New creates a table
func New() *Table {
	return &Table{}
}

// NormalizeKey converts integer kinds and integral floats to int
func NormalizeKey(key interface{}) (interface{}, error) {
	if key == nil {
		return nil, ErrInvalidKey
	}
	if conv.IsNumeric(key) {
		if pos, ok := conv.AsInt(key); ok {
			return pos, nil
		}
	}
	if !reflect.TypeOf(key).Comparable() {
		return nil, fmt.Errorf("%w: %T", ErrNotComparable, key)
	}
	return key, nil
}

// Len returns number of entries
func (t *Table) Len() int {
	return len(t.list) + len(t.keys)
}

// ListLen returns size of the list part
func (t *Table) ListLen() int {
	return len(t.list)
}

// IsFrozen returns true if table was frozen
func (t *Table) IsFrozen() bool {
	return t.frozen
}

// Freeze marks table immutable
func (t *Table) Freeze() {
	t.frozen = true
}

// Get returns a value for supplied key
func (t *Table) Get(key interface{}) (interface{}, bool) {
	key, err := NormalizeKey(key)
	if err != nil {
		return nil, false
	}
	if pos, ok := key.(int); ok && pos >= 0 && pos < len(t.list) {
		return t.list[pos], true
	}
	if t.fields == nil {
		return nil, false
	}
	value, ok := t.fields[key]
	return value, ok
}

// Has returns true if key is present
func (t *Table) Has(key interface{}) bool {
	_, ok := t.Get(key)
	return ok
}

// Set assigns value to the key, nil value deletes keyed entry or pops the last position
func (t *Table) Set(key interface{}, value interface{}) error {
	if t.frozen {
		return ErrFrozen
	}
	key, err := NormalizeKey(key)
	if err != nil {
		return err
	}
	if pos, ok := key.(int); ok && pos >= 0 && pos <= len(t.list) {
		switch {
		case pos < len(t.list):
			if value == nil && pos == len(t.list)-1 {
				t.list = t.list[:pos]
				return nil
			}
			t.list[pos] = value
		case value != nil:
			t.list = append(t.list, value)
			t.migrate()
		}
		return nil
	}
	if value == nil {
		t.delete(key)
		return nil
	}
	if t.fields == nil {
		t.fields = make(map[interface{}]interface{})
	}
	if _, ok := t.fields[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.fields[key] = value
	return nil
}

// Delete removes keyed entry or position shifting subsequent positions down, it returns false if nothing was removed
func (t *Table) Delete(key interface{}) (bool, error) {
	if t.frozen {
		return false, ErrFrozen
	}
	key, err := NormalizeKey(key)
	if err != nil {
		return false, err
	}
	if pos, ok := key.(int); ok && pos >= 0 && pos < len(t.list) {
		if _, err = t.RemoveAt(pos); err != nil {
			return false, err
		}
		return true, nil
	}
	return t.delete(key), nil
}

func (t *Table) delete(key interface{}) bool {
	if _, ok := t.fields[key]; !ok {
		return false
	}
	delete(t.fields, key)
	for i, candidate := range t.keys {
		if candidate == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
	return true
}

// migrate moves integer keyed entries that became contiguous into the list part
func (t *Table) migrate() {
	for len(t.fields) > 0 {
		next := len(t.list)
		value, ok := t.fields[next]
		if !ok {
			return
		}
		t.delete(next)
		t.list = append(t.list, value)
	}
}

// Append adds value at the next position
func (t *Table) Append(value interface{}) error {
	if t.frozen {
		return ErrFrozen
	}
	t.list = append(t.list, value)
	t.migrate()
	return nil
}

// InsertAt inserts value at position shifting subsequent entries up
func (t *Table) InsertAt(pos int, value interface{}) error {
	if t.frozen {
		return ErrFrozen
	}
	if pos < 0 || pos > len(t.list) {
		return fmt.Errorf("%w: %v", ErrOutOfRange, pos)
	}
	t.list = append(t.list, nil)
	copy(t.list[pos+1:], t.list[pos:])
	t.list[pos] = value
	t.migrate()
	return nil
}

// RemoveAt removes value at position shifting subsequent entries down
func (t *Table) RemoveAt(pos int) (interface{}, error) {
	if t.frozen {
		return nil, ErrFrozen
	}
	if pos < 0 || pos >= len(t.list) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfRange, pos)
	}
	value := t.list[pos]
	t.list = append(t.list[:pos], t.list[pos+1:]...)
	return value, nil
}

// Pop removes the last position, it returns nil for empty list
func (t *Table) Pop() (interface{}, error) {
	if t.frozen {
		return nil, ErrFrozen
	}
	if len(t.list) == 0 {
		return nil, nil
	}
	return t.RemoveAt(len(t.list) - 1)
}

// Clear removes all entries
func (t *Table) Clear() error {
	if t.frozen {
		return ErrFrozen
	}
	t.list = nil
	t.keys = nil
	t.fields = nil
	return nil
}

// Range calls fn for each entry in enumeration order until fn returns false
func (t *Table) Range(fn func(key, value interface{}) bool) {
	for i, value := range t.list {
		if !fn(i, value) {
			return
		}
	}
	for _, key := range t.keys {
		if !fn(key, t.fields[key]) {
			return
		}
	}
}

// Keys returns keys in enumeration order
func (t *Table) Keys() []interface{} {
	result := make([]interface{}, 0, t.Len())
	t.Range(func(key, _ interface{}) bool {
		result = append(result, key)
		return true
	})
	return result
}

// Values returns values in enumeration order
func (t *Table) Values() []interface{} {
	result := make([]interface{}, 0, t.Len())
	t.Range(func(_, value interface{}) bool {
		result = append(result, value)
		return true
	})
	return result
}

// IsList returns true if table has no keyed part
func (t *Table) IsList() bool {
	return len(t.keys) == 0
}

// Find returns a key of the first entry equal to needle, starting at init position.
// Keyed entries are searched only when init is zero.
func (t *Table) Find(needle interface{}, init int) (interface{}, bool) {
	if init < 0 {
		init = 0
	}
	for i := init; i < len(t.list); i++ {
		if Equal(t.list[i], needle) {
			return i, true
		}
	}
	if init > 0 {
		return nil, false
	}
	for _, key := range t.keys {
		if Equal(t.fields[key], needle) {
			return key, true
		}
	}
	return nil, false
}

// Unpack returns list values in [i, j] inclusive range
func (t *Table) Unpack(i, j int) []interface{} {
	if i < 0 {
		i = 0
	}
	if j >= len(t.list) {
		j = len(t.list) - 1
	}
	if j < i {
		return []interface{}{}
	}
	result := make([]interface{}, j-i+1)
	copy(result, t.list[i:j+1])
	return result
}

// Concat joins list values in [i, j] inclusive range with sep
func (t *Table) Concat(sep string, i, j int) (string, error) {
	if j < i {
		return "", nil
	}
	if i < 0 || j >= len(t.list) {
		return "", fmt.Errorf("%w: [%v, %v]", ErrOutOfRange, i, j)
	}
	builder := strings.Builder{}
	for k := i; k <= j; k++ {
		text, err := conv.ToString(t.list[k])
		if err != nil {
			return "", fmt.Errorf("invalid value at position %v: %w", k, err)
		}
		if k > i {
			builder.WriteString(sep)
		}
		builder.WriteString(text)
	}
	return builder.String(), nil
}

// Map returns a table with the same keys and positions holding fn results, the result is not frozen
func (t *Table) Map(fn func(key, value interface{}) interface{}) *Table {
	result := &Table{}
	if len(t.list) > 0 {
		result.list = make([]interface{}, len(t.list))
		for i, value := range t.list {
			result.list[i] = fn(i, value)
		}
	}
	if len(t.keys) > 0 {
		result.keys = make([]interface{}, 0, len(t.keys))
		result.fields = make(map[interface{}]interface{}, len(t.fields))
		for _, key := range t.keys {
			value := fn(key, t.fields[key])
			if value == nil {
				continue
			}
			result.keys = append(result.keys, key)
			result.fields[key] = value
		}
	}
	return result
}
