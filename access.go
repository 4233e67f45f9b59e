package watchable

import (
	"iter"
)

// methods is the operation table consulted before data keys: a key naming an operation
// resolves to the bound method value.
var methods map[string]func(c *Container) interface{}

func init() {
	methods = map[string]func(c *Container) interface{}{
		"Get":         func(c *Container) interface{} { return c.Get },
		"Set":         func(c *Container) interface{} { return c.Set },
		"Child":       func(c *Container) interface{} { return c.Child },
		"Len":         func(c *Container) interface{} { return c.Len },
		"Keys":        func(c *Container) interface{} { return c.Keys },
		"Range":       func(c *Container) interface{} { return c.Range },
		"All":         func(c *Container) interface{} { return c.All },
		"Insert":      func(c *Container) interface{} { return c.Insert },
		"InsertAt":    func(c *Container) interface{} { return c.InsertAt },
		"Remove":      func(c *Container) interface{} { return c.Remove },
		"Clear":       func(c *Container) interface{} { return c.Clear },
		"Move":        func(c *Container) interface{} { return c.Move },
		"Sort":        func(c *Container) interface{} { return c.Sort },
		"Concat":      func(c *Container) interface{} { return c.Concat },
		"Find":        func(c *Container) interface{} { return c.Find },
		"Unpack":      func(c *Container) interface{} { return c.Unpack },
		"GetEntries":  func(c *Container) interface{} { return c.GetEntries },
		"Freeze":      func(c *Container) interface{} { return c.Freeze },
		"Clone":       func(c *Container) interface{} { return c.Clone },
		"Serialize":   func(c *Container) interface{} { return c.Serialize },
		"Destroy":     func(c *Container) interface{} { return c.Destroy },
		"Subscribe":   func(c *Container) interface{} { return c.Subscribe },
		"Parent":      func(c *Container) interface{} { return c.Parent },
		"Notifier":    func(c *Container) interface{} { return c.Notifier },
		"IsFrozen":    func(c *Container) interface{} { return c.IsFrozen },
		"IsDestroyed": func(c *Container) interface{} { return c.IsDestroyed },
		"Modified":    func(c *Container) interface{} { return c.Modified },
		"MarshalJSON": func(c *Container) interface{} { return c.MarshalJSON },
		"MarshalYAML": func(c *Container) interface{} { return c.MarshalYAML },
		"Dump":        func(c *Container) interface{} { return c.Dump },
		"Value":       func(c *Container) interface{} { return c.Value },
		"SetValue":    func(c *Container) interface{} { return c.SetValue },
	}
}

// IsMethod returns true if name resolves to a container operation rather than data
func IsMethod(name string) bool {
	_, ok := methods[name]
	return ok
}

// Get resolves a key: operation names take priority over same-named data keys,
// any other key is looked up in the store.
func (c *Container) Get(key interface{}) (interface{}, bool) {
	if name, ok := key.(string); ok && c != nil {
		if method, ok := methods[name]; ok {
			return method(c), true
		}
	}
	if c == nil || c.destroyed {
		return nil, false
	}
	return c.store.Get(key)
}

// Set assigns value to the key and fires change notifications only if the store changed.
// Structured values are stored as supplied, they are not wrapped into child containers.
// A nil value deletes a keyed entry or the last position.
func (c *Container) Set(key interface{}, value interface{}) error {
	if err := c.checkMutable("Set", key); err != nil {
		return err
	}
	snapshot := c.store.Clone()
	previous, _ := c.store.Get(key)
	if err := c.store.Set(key, value); err != nil {
		return wrapTableError("Set", key, err)
	}
	c.detach(previous)
	if !snapshot.Equal(c.store) {
		c.fireChangedForParents()
	}
	return nil
}

// Child returns a nested container stored under the key
func (c *Container) Child(key interface{}) (*Container, bool) {
	if c == nil || c.destroyed {
		return nil, false
	}
	value, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	child, ok := value.(*Container)
	return child, ok
}

// Len returns number of entries
func (c *Container) Len() int {
	if c == nil || c.destroyed {
		return 0
	}
	return c.store.Len()
}

// Keys returns keys in enumeration order: positions first, then other keys in insertion order
func (c *Container) Keys() []interface{} {
	if c == nil || c.destroyed {
		return nil
	}
	return c.store.Keys()
}

// Range calls fn for each entry in enumeration order until fn returns false
func (c *Container) Range(fn func(key, value interface{}) bool) {
	if c == nil || c.destroyed {
		return
	}
	c.store.Range(fn)
}

// All returns an iterator over entries in enumeration order
func (c *Container) All() iter.Seq2[interface{}, interface{}] {
	return func(yield func(interface{}, interface{}) bool) {
		c.Range(yield)
	}
}
