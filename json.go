package watchable

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/francoispqt/gojay"
	"github.com/viant/watchable/conv"
)

// MarshalJSON encodes positional-only content as JSON array, any other content as JSON object.
// Keys are rendered as strings; distinct keys with the same rendering are a usage error.
func (c *Container) MarshalJSON() ([]byte, error) {
	if err := c.check("MarshalJSON", nil); err != nil {
		return nil, err
	}
	if err := c.checkJSONKeys(); err != nil {
		return nil, err
	}
	if c.store.IsList() {
		return gojay.MarshalJSONArray(c)
	}
	return gojay.MarshalJSONObject(c)
}

// checkJSONKeys rejects objects with distinct keys rendering to the same member name, e.g. 1 and "1"
func (c *Container) checkJSONKeys() error {
	for _, node := range c.subtree() {
		if node.store.IsList() {
			continue
		}
		names := make(map[string]interface{}, node.store.Len())
		var err error
		node.store.Range(func(key, _ interface{}) bool {
			name := keyText(key)
			if other, ok := names[name]; ok {
				err = newError("MarshalJSON", KindUsage, key, fmt.Errorf("key collides with %#v as member %q", other, name))
				return false
			}
			names[name] = key
			return true
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// IsNil implements gojay marshalers
func (c *Container) IsNil() bool {
	return c == nil
}

// MarshalJSONObject encodes entries as object members, keys are rendered as strings
func (c *Container) MarshalJSONObject(enc *gojay.Encoder) {
	c.store.Range(func(key, value interface{}) bool {
		c.encodeKey(enc, keyText(key), value)
		return true
	})
}

// MarshalJSONArray encodes entries as array elements
func (c *Container) MarshalJSONArray(enc *gojay.Encoder) {
	c.store.Range(func(_, value interface{}) bool {
		c.encodeElement(enc, value)
		return true
	})
}

type (
	jsonArray []interface{}

	jsonObject struct {
		keys   []string
		values map[string]interface{}
	}
)

func (a jsonArray) IsNil() bool {
	return a == nil
}

func (a jsonArray) MarshalJSONArray(enc *gojay.Encoder) {
	for _, value := range a {
		encodePlainElement(enc, value)
	}
}

func (o *jsonObject) IsNil() bool {
	return o == nil
}

func (o *jsonObject) MarshalJSONObject(enc *gojay.Encoder) {
	for _, key := range o.keys {
		encodePlainKey(enc, key, o.values[key])
	}
}

func newJSONObject(size int) *jsonObject {
	return &jsonObject{keys: make([]string, 0, size), values: make(map[string]interface{}, size)}
}

func (o *jsonObject) put(key string, value interface{}) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (c *Container) encodeKey(enc *gojay.Encoder, key string, value interface{}) {
	if child, ok := value.(*Container); ok {
		if child.store.IsList() {
			enc.AddArrayKey(key, child)
		} else {
			enc.AddObjectKey(key, child)
		}
		return
	}
	encodePlainKey(enc, key, c.serializeValue(value))
}

func (c *Container) encodeElement(enc *gojay.Encoder, value interface{}) {
	if child, ok := value.(*Container); ok {
		if child.store.IsList() {
			enc.AddArray(child)
		} else {
			enc.AddObject(child)
		}
		return
	}
	encodePlainElement(enc, c.serializeValue(value))
}

func encodePlainKey(enc *gojay.Encoder, key string, value interface{}) {
	switch actual := value.(type) {
	case nil:
		enc.AddNullKey(key)
	case string:
		enc.AddStringKey(key, actual)
	case bool:
		enc.AddBoolKey(key, actual)
	case []interface{}:
		enc.AddArrayKey(key, jsonArray(actual))
	case map[string]interface{}:
		enc.AddObjectKey(key, objectOf(actual))
	case map[interface{}]interface{}:
		enc.AddObjectKey(key, objectOf(actual))
	default:
		if i, ok := asInt64(value); ok {
			enc.AddInt64Key(key, i)
			return
		}
		if f, ok := conv.AsFloat(value); ok {
			enc.AddFloat64Key(key, f)
			return
		}
		enc.AddStringKey(key, scalarText(value))
	}
}

func encodePlainElement(enc *gojay.Encoder, value interface{}) {
	switch actual := value.(type) {
	case nil:
		enc.AddNull()
	case string:
		enc.AddString(actual)
	case bool:
		enc.AddBool(actual)
	case []interface{}:
		enc.AddArray(jsonArray(actual))
	case map[string]interface{}:
		enc.AddObject(objectOf(actual))
	case map[interface{}]interface{}:
		enc.AddObject(objectOf(actual))
	default:
		if i, ok := asInt64(value); ok {
			enc.AddInt64(i)
			return
		}
		if f, ok := conv.AsFloat(value); ok {
			enc.AddFloat64(f)
			return
		}
		enc.AddString(scalarText(value))
	}
}

// objectOf returns a JSON object with keys in sorted order
func objectOf[K comparable](values map[K]interface{}) *jsonObject {
	ret := newJSONObject(len(values))
	keys := make([]string, 0, len(values))
	index := make(map[string]interface{}, len(values))
	for k, v := range values {
		text := keyText(k)
		keys = append(keys, text)
		index[text] = v
	}
	sort.Strings(keys)
	for _, key := range keys {
		ret.put(key, index[key])
	}
	return ret
}

func asInt64(value interface{}) (int64, bool) {
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rValue.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rValue.Uint(); u <= math.MaxInt64 {
			return int64(u), true
		}
	}
	return 0, false
}

func keyText(key interface{}) string {
	if text, err := conv.ToString(key); err == nil {
		return text
	}
	return fmt.Sprint(key)
}

func scalarText(value interface{}) string {
	if text, err := conv.ToString(value); err == nil {
		return text
	}
	return fmt.Sprint(value)
}
