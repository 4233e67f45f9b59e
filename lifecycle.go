package watchable

import (
	"reflect"

	"github.com/viant/watchable/table"
	"github.com/viant/watchable/visitor"
)

// Clone returns an independent root container holding a deep copy of this container content
func (c *Container) Clone() *Container {
	if c.check("Clone", nil) != nil {
		return nil
	}
	ret := c.cloneTree(nil)
	ret.baseline = ret.Serialize()
	return ret
}

func (c *Container) cloneTree(parent *Container) *Container {
	ret := newNode(parent, c.options)
	ret.store = c.store.Map(func(_, value interface{}) interface{} {
		if child, ok := value.(*Container); ok && !child.destroyed {
			cloned := child.cloneTree(ret)
			cloned.baseline = cloned.Serialize()
			return cloned
		}
		return table.Clone(value)
	})
	return ret
}

// Serialize returns plain content with no containers: positional-only content as []interface{},
// string keyed content as map[string]interface{}, mixed content as map[interface{}]interface{}.
func (c *Container) Serialize() interface{} {
	if c == nil {
		return nil
	}
	return c.serializeTable(c.store)
}

func (c *Container) serializeTable(t *table.Table) interface{} {
	if t.IsList() {
		result := make([]interface{}, 0, t.ListLen())
		t.Range(func(_, value interface{}) bool {
			result = append(result, c.serializeValue(value))
			return true
		})
		return result
	}
	if t.ListLen() == 0 {
		stringKeys := true
		t.Range(func(key, _ interface{}) bool {
			_, stringKeys = key.(string)
			return stringKeys
		})
		if stringKeys {
			result := make(map[string]interface{}, t.Len())
			t.Range(func(key, value interface{}) bool {
				result[key.(string)] = c.serializeValue(value)
				return true
			})
			return result
		}
	}
	result := make(map[interface{}]interface{}, t.Len())
	t.Range(func(key, value interface{}) bool {
		result[key] = c.serializeValue(value)
		return true
	})
	return result
}

func (c *Container) serializeValue(value interface{}) interface{} {
	switch actual := value.(type) {
	case *Container:
		return actual.Serialize()
	case *table.Table:
		return c.serializeTable(actual)
	}
	if !visitor.IsStructured(value) {
		return value
	}
	if kind := reflect.TypeOf(value).Kind(); kind == reflect.Slice || kind == reflect.Array {
		return c.serializeSlice(value)
	}
	visit, ok := visitor.AnyOf(value, c.options.visitorOpts...)
	if !ok {
		return value
	}
	plain := table.New()
	_ = visit(func(key any, element any) (bool, error) {
		return true, plain.Set(key, element)
	})
	return c.serializeTable(plain)
}

// serializeSlice keeps raw slices positional, nil elements included
func (c *Container) serializeSlice(value interface{}) interface{} {
	visit, err := visitor.AnySliceVisitorOf(value)
	if err != nil {
		return value
	}
	result := []interface{}{}
	_ = visit(func(_ int, element any) (bool, error) {
		result = append(result, c.serializeValue(element))
		return true, nil
	})
	return result
}

// Destroy destroys every nested container first, then releases the notifier and clears the store.
// Destroying a container twice is a usage error.
func (c *Container) Destroy() error {
	if err := c.check("Destroy", nil); err != nil {
		return err
	}
	for _, node := range c.subtree() {
		node.release()
	}
	return nil
}

// subtree returns live containers reachable through the store, children before their owners
func (c *Container) subtree() []*Container {
	var result []*Container
	seen := map[*Container]bool{c: true}
	type frame struct {
		node     *Container
		expanded bool
	}
	stack := []frame{{node: c}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.expanded {
			result = append(result, top.node)
			stack = stack[:len(stack)-1]
			continue
		}
		top.expanded = true
		node := top.node
		node.store.Range(func(_, value interface{}) bool {
			if child, ok := value.(*Container); ok && !child.destroyed && !seen[child] {
				seen[child] = true
				stack = append(stack, frame{node: child})
			}
			return true
		})
	}
	return result
}

func (c *Container) release() {
	c.notifier.Destroy()
	c.store = table.New()
	c.baseline = nil
	c.arena.unregister(c)
	c.destroyed = true
}
