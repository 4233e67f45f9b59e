package watchable

import (
	"fmt"

	"github.com/viant/watchable/conv"
	"github.com/viant/watchable/table"
)

// Insert appends value at the next position, structured values are wrapped into a child container
func (c *Container) Insert(value interface{}) error {
	const op = "Insert"
	if err := c.checkMutable(op, nil); err != nil {
		return err
	}
	if value == nil {
		return newError(op, KindUsage, nil, fmt.Errorf("missing value"))
	}
	wrapped, err := c.wrap(value)
	if err != nil {
		return err
	}
	if err = c.store.Append(wrapped); err != nil {
		return wrapTableError(op, nil, err)
	}
	c.fireChangedForParents()
	return nil
}

// InsertAt inserts value at position, shifting subsequent positions up
func (c *Container) InsertAt(pos int, value interface{}) error {
	const op = "InsertAt"
	if err := c.checkMutable(op, pos); err != nil {
		return err
	}
	if value == nil {
		return newError(op, KindUsage, pos, fmt.Errorf("missing value"))
	}
	if pos < 0 || pos > c.store.ListLen() {
		return newError(op, KindUsage, pos, table.ErrOutOfRange)
	}
	wrapped, err := c.wrap(value)
	if err != nil {
		return err
	}
	if err = c.store.InsertAt(pos, wrapped); err != nil {
		return wrapTableError(op, pos, err)
	}
	c.fireChangedForParents()
	return nil
}

// Remove removes and returns an entry.
// Without pos the last position is removed; numeric pos removes by position;
// any other pos is matched by value first and then used as a key.
func (c *Container) Remove(pos ...interface{}) (interface{}, error) {
	const op = "Remove"
	if err := c.checkMutable(op, nil); err != nil {
		return nil, err
	}
	if len(pos) > 1 {
		return nil, newError(op, KindUsage, nil, fmt.Errorf("expected at most one position, got %v", len(pos)))
	}
	var removed interface{}
	var err error
	switch {
	case len(pos) == 0 || pos[0] == nil:
		if removed, err = c.store.Pop(); err != nil {
			return nil, wrapTableError(op, nil, err)
		}
	case conv.IsNumeric(pos[0]):
		index, ok := conv.AsInt(pos[0])
		if !ok {
			return nil, newError(op, KindUsage, pos[0], fmt.Errorf("invalid position"))
		}
		if removed, err = c.store.RemoveAt(index); err != nil {
			return nil, wrapTableError(op, pos[0], err)
		}
	default:
		if removed, err = c.removeMatch(op, pos[0]); err != nil {
			return nil, err
		}
	}
	c.detach(removed)
	c.fireChangedForParents()
	return removed, nil
}

func (c *Container) removeMatch(op string, needle interface{}) (interface{}, error) {
	key, ok := c.store.Find(needle, 0)
	if !ok {
		if _, has := c.store.Get(needle); has {
			key, ok = needle, true
		}
	}
	if !ok {
		return nil, newError(op, KindNotFound, needle, fmt.Errorf("no matching value or key"))
	}
	removed, _ := c.store.Get(key)
	if _, err := c.store.Delete(key); err != nil {
		return nil, wrapTableError(op, key, err)
	}
	return removed, nil
}

// Clear removes all entries
func (c *Container) Clear() error {
	const op = "Clear"
	if err := c.checkMutable(op, nil); err != nil {
		return err
	}
	previous := c.store.Values()
	if err := c.store.Clear(); err != nil {
		return wrapTableError(op, nil, err)
	}
	c.detach(previous...)
	c.fireChangedForParents()
	return nil
}

// Move copies entries at positions [from, to] to positions starting at target,
// optionally into a destination container. Nested containers copied to another
// container are re-wrapped under the destination.
func (c *Container) Move(from, to, target int, dest ...*Container) error {
	const op = "Move"
	if err := c.checkMutable(op, nil); err != nil {
		return err
	}
	dst := c
	if len(dest) > 0 && dest[0] != nil {
		dst = dest[0]
		if err := dst.checkMutable(op, nil); err != nil {
			return err
		}
	}
	previous := dst.store.Values()
	if err := c.store.Move(from, to, target, dst.store); err != nil {
		return wrapTableError(op, from, err)
	}
	if dst != c && to >= from {
		if err := dst.adopt(target, target+(to-from)); err != nil {
			return err
		}
	}
	dst.detach(previous...)
	c.fireChangedForParents()
	if dst != c {
		dst.fireChangedForParents()
	}
	return nil
}

// adopt re-wraps containers at positions [from, to] that belong to another parent
func (c *Container) adopt(from, to int) error {
	var foreign []int
	c.store.Range(func(key, value interface{}) bool {
		pos, ok := key.(int)
		if !ok || pos < from || pos > to {
			return true
		}
		if child, ok := value.(*Container); ok && child.Parent() != c {
			foreign = append(foreign, pos)
		}
		return true
	})
	for _, pos := range foreign {
		value, _ := c.store.Get(pos)
		wrapped, err := c.wrap(value)
		if err != nil {
			return err
		}
		if err = c.store.Set(pos, wrapped); err != nil {
			return wrapTableError("Move", pos, err)
		}
	}
	return nil
}

// Sort sorts positional entries in place.
// A nil less orders all-number or all-string entries, less must be a strict weak ordering.
func (c *Container) Sort(less func(a, b interface{}) bool) error {
	const op = "Sort"
	if err := c.checkMutable(op, nil); err != nil {
		return err
	}
	if err := c.store.Sort(less); err != nil {
		return wrapTableError(op, nil, err)
	}
	c.fireChangedForParents()
	return nil
}

// Concat joins positional entries in [i, j] (full range by default) with sep
func (c *Container) Concat(sep string, bounds ...int) (string, error) {
	const op = "Concat"
	if err := c.checkMutable(op, nil); err != nil {
		return "", err
	}
	i, j, err := c.bounds(op, bounds)
	if err != nil {
		return "", err
	}
	result, err := c.store.Concat(sep, i, j)
	if err != nil {
		return "", wrapTableError(op, nil, err)
	}
	c.fireChangedForParents()
	return result, nil
}

// Find returns the key of the first entry equal to needle, searching positions from init
func (c *Container) Find(needle interface{}, init ...int) (interface{}, bool) {
	if c.check("Find", nil) != nil {
		return nil, false
	}
	offset := 0
	if len(init) > 0 {
		offset = init[0]
	}
	return c.store.Find(needle, offset)
}

// Unpack returns positional entries in [i, j] (full range by default)
func (c *Container) Unpack(bounds ...int) []interface{} {
	if c.check("Unpack", nil) != nil {
		return nil
	}
	i, j, err := c.bounds("Unpack", bounds)
	if err != nil {
		return nil
	}
	return c.store.Unpack(i, j)
}

// GetEntries returns the live store; changes made through it bypass change notifications
func (c *Container) GetEntries() *table.Table {
	if c == nil {
		return nil
	}
	return c.store
}

// Freeze rejects all subsequent structural changes of this container, nested containers are not frozen
func (c *Container) Freeze() error {
	if err := c.check("Freeze", nil); err != nil {
		return err
	}
	if c.frozen {
		return nil
	}
	c.frozen = true
	c.store.Freeze()
	return nil
}

func (c *Container) bounds(op string, bounds []int) (int, int, error) {
	i, j := 0, c.store.ListLen()-1
	switch len(bounds) {
	case 0:
	case 1:
		i = bounds[0]
	case 2:
		i, j = bounds[0], bounds[1]
	default:
		return 0, 0, newError(op, KindUsage, nil, fmt.Errorf("expected at most two bounds, got %v", len(bounds)))
	}
	return i, j, nil
}
