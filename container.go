package watchable

import (
	"fmt"

	"github.com/viant/watchable/notify"
	"github.com/viant/watchable/table"
	"github.com/viant/watchable/visitor"
)

type (
	//Container represents an observable ordered and keyed structure.
	//Every structured value placed by construction or Insert is itself a Container
	//whose parent is the owner; any change fires the container notifier and then
	//every ancestor notifier up to the root.
	Container struct {
		id          uint64
		parentID    uint64
		arena       *arena
		parentArena *arena
		notifier    notify.Notifier
		frozen      bool
		destroyed   bool
		store       *table.Table
		baseline    interface{}
		options     *options
	}

	//arena owns the id to container mapping of one tree, parent links are plain ids.
	//A container that leaves its owner store moves with its owned descendants to an arena of its own.
	arena struct {
		nodes  map[uint64]*Container
		nextID uint64
	}
)

func newArena() *arena {
	return &arena{nodes: map[uint64]*Container{}}
}

func (a *arena) register(c *Container) {
	a.nextID++
	c.id = a.nextID
	a.nodes[c.id] = c
}

// adopt registers a container keeping its id
func (a *arena) adopt(c *Container) {
	a.nodes[c.id] = c
	if c.id > a.nextID {
		a.nextID = c.id
	}
}

func (a *arena) unregister(c *Container) {
	delete(a.nodes, c.id)
}

func (a *arena) lookup(id uint64) *Container {
	if id == 0 {
		return nil
	}
	return a.nodes[id]
}

// New creates a container over a seed structure, nil seed creates an empty container.
// Seed maps, slices, arrays and structs are wrapped recursively, a scalar seed is a usage error.
func New(initial interface{}, opts ...Option) (*Container, error) {
	o := newOptions(opts)
	if parent := o.parent; parent != nil && parent.destroyed {
		return nil, newError("New", KindUsage, nil, fmt.Errorf("parent was destroyed"))
	}
	return construct(initial, o.parent, o)
}

func construct(initial interface{}, parent *Container, o *options) (*Container, error) {
	ret := newNode(parent, o)
	if initial != nil {
		if err := ret.seed(initial); err != nil {
			_ = ret.Destroy()
			return nil, err
		}
	}
	ret.baseline = ret.Serialize()
	return ret, nil
}

func newNode(parent *Container, o *options) *Container {
	ret := &Container{notifier: o.newNotifier(), store: table.New(), options: o}
	if parent != nil {
		ret.arena = parent.arena
		ret.parentArena = parent.arena
		ret.parentID = parent.id
	} else {
		ret.arena = newArena()
	}
	ret.arena.register(ret)
	return ret
}

func (c *Container) seed(initial interface{}) error {
	var visit visitor.Visitor[any, any]
	switch actual := initial.(type) {
	case *Container:
		initial = actual.Serialize()
	case *table.Table:
		visit = tableVisitor(actual)
	}
	if visit == nil {
		var ok bool
		if visit, ok = visitor.AnyOf(initial, c.options.visitorOpts...); !ok {
			return newError("New", KindUsage, nil, fmt.Errorf("expected structured value, got %T", initial))
		}
	}
	return visit(func(key any, element any) (bool, error) {
		value, err := c.wrap(element)
		if err != nil {
			return false, err
		}
		if value == nil {
			return true, nil
		}
		if err = c.store.Set(key, value); err != nil {
			return false, wrapTableError("New", key, err)
		}
		return true, nil
	})
}

// wrap returns a child container for a structured value, scalars are returned as is.
// A container value is copied under this container to keep a single parent per child.
func (c *Container) wrap(value interface{}) (interface{}, error) {
	switch actual := value.(type) {
	case *Container:
		return construct(actual.Serialize(), c, c.options)
	case *table.Table:
		return construct(actual, c, c.options)
	}
	if !visitor.IsStructured(value) {
		return value, nil
	}
	return construct(value, c, c.options)
}

func tableVisitor(t *table.Table) visitor.Visitor[any, any] {
	return func(f func(key any, element any) (bool, error)) error {
		var err error
		t.Range(func(key, value interface{}) bool {
			var next bool
			next, err = f(key, value)
			return next && err == nil
		})
		return err
	}
}

// Parent returns the container holding this one, nil for a root
func (c *Container) Parent() *Container {
	if c == nil || c.parentArena == nil {
		return nil
	}
	return c.parentArena.lookup(c.parentID)
}

// Notifier returns container notifier
func (c *Container) Notifier() notify.Notifier {
	if c == nil {
		return nil
	}
	return c.notifier
}

// Subscribe adds a change listener, it returns an unsubscribe function
func (c *Container) Subscribe(listener func()) (func(), error) {
	if err := c.check("Subscribe", nil); err != nil {
		return nil, err
	}
	subscriber, ok := c.notifier.(notify.Subscriber)
	if !ok {
		return nil, newError("Subscribe", KindUsage, nil, fmt.Errorf("notifier %T does not accept listeners", c.notifier))
	}
	return subscriber.Subscribe(listener), nil
}

// IsFrozen returns true if container was frozen
func (c *Container) IsFrozen() bool {
	return c != nil && c.frozen
}

// IsDestroyed returns true if container was destroyed
func (c *Container) IsDestroyed() bool {
	return c != nil && c.destroyed
}

// Modified returns true if container content differs from its content at construction time
func (c *Container) Modified() bool {
	if c == nil || c.destroyed {
		return false
	}
	return !table.Equal(c.baseline, c.Serialize())
}

// detach isolates owned containers among values that are no longer held by this container store.
// A detached container keeps its parent link, so its changes still reach this container while it lives.
func (c *Container) detach(values ...interface{}) {
	var held map[*Container]bool
	for _, value := range values {
		child, ok := value.(*Container)
		if !ok || child.destroyed || child.arena != c.arena || child.Parent() != c {
			continue
		}
		if held == nil {
			held = c.held()
		}
		if held[child] {
			continue
		}
		child.isolate()
	}
}

func (c *Container) held() map[*Container]bool {
	result := map[*Container]bool{}
	c.store.Range(func(_, value interface{}) bool {
		if child, ok := value.(*Container); ok {
			result[child] = true
		}
		return true
	})
	return result
}

// isolate moves this container and its owned descendants to a new arena
func (c *Container) isolate() {
	previous := c.arena
	registry := newArena()
	for _, node := range c.owned() {
		previous.unregister(node)
		registry.adopt(node)
		node.arena = registry
		if node != c {
			node.parentArena = registry
		}
	}
}

// owned returns this container followed by every live descendant created under it
func (c *Container) owned() []*Container {
	result := []*Container{c}
	seen := map[*Container]bool{c: true}
	for i := 0; i < len(result); i++ {
		node := result[i]
		node.store.Range(func(_, value interface{}) bool {
			child, ok := value.(*Container)
			if !ok || seen[child] || child.destroyed {
				return true
			}
			if child.arena == node.arena && child.parentArena == node.arena && child.parentID == node.id {
				seen[child] = true
				result = append(result, child)
			}
			return true
		})
	}
	return result
}

// fireChangedForParents fires this container notifier and then every ancestor notifier up to the root
func (c *Container) fireChangedForParents() {
	c.notifier.Fire()
	for parent := c.Parent(); parent != nil; parent = parent.Parent() {
		parent.notifier.Fire()
	}
}

func (c *Container) check(op string, key interface{}) error {
	if c == nil {
		return newError(op, KindUsage, key, fmt.Errorf("nil container"))
	}
	if c.destroyed {
		return newError(op, KindUsage, key, fmt.Errorf("container was destroyed"))
	}
	return nil
}

func (c *Container) checkMutable(op string, key interface{}) error {
	if err := c.check(op, key); err != nil {
		return err
	}
	if c.frozen {
		return newError(op, KindFrozen, key, table.ErrFrozen)
	}
	return nil
}
