package watchable

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	//segment represents a single path step, indexed steps take position from WithPathIndex
	segment struct {
		key     interface{}
		indexed bool
	}

	pathOptions struct {
		indexes  []int
		indexPos int
	}

	//PathOption represents path option
	PathOption func(o *pathOptions)
)

// WithPathIndex supplies positions for [] placeholders, in order of appearance
func WithPathIndex(indexes ...int) PathOption {
	return func(o *pathOptions) {
		o.indexes = indexes
	}
}

func newPathOptions(opts []PathOption) *pathOptions {
	var result = &pathOptions{}
	for _, opt := range opts {
		opt(result)
	}
	return result
}

func (o *pathOptions) nextIndex() (int, error) {
	if o.indexPos >= len(o.indexes) {
		return 0, fmt.Errorf("missing index for placeholder %v", o.indexPos)
	}
	ret := o.indexes[o.indexPos]
	o.indexPos++
	return ret, nil
}

// parsePath parses dotted expressions like "a.b[1].c", "items[].name" or "list.0"
func parsePath(expr string) ([]segment, error) {
	if expr == "" {
		return nil, fmt.Errorf("empty path")
	}
	var result []segment
	for _, part := range strings.Split(expr, ".") {
		name := part
		var brackets string
		if idx := strings.IndexByte(part, '['); idx != -1 {
			name, brackets = part[:idx], part[idx:]
		}
		if name == "" && brackets == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", expr)
		}
		if name != "" {
			result = append(result, segment{key: segmentKey(name)})
		}
		for brackets != "" {
			end := strings.IndexByte(brackets, ']')
			if brackets[0] != '[' || end == -1 {
				return nil, fmt.Errorf("invalid path %q: unbalanced brackets", expr)
			}
			index := brackets[1:end]
			brackets = brackets[end+1:]
			if index == "" {
				result = append(result, segment{indexed: true})
				continue
			}
			pos, err := strconv.Atoi(index)
			if err != nil {
				return nil, fmt.Errorf("invalid path %q: %w", expr, err)
			}
			result = append(result, segment{key: pos})
		}
	}
	return result, nil
}

func segmentKey(name string) interface{} {
	if pos, err := strconv.Atoi(name); err == nil {
		return pos
	}
	return name
}

func (o *pathOptions) resolve(segments []segment) ([]interface{}, error) {
	result := make([]interface{}, len(segments))
	for i, seg := range segments {
		if !seg.indexed {
			result[i] = seg.key
			continue
		}
		pos, err := o.nextIndex()
		if err != nil {
			return nil, err
		}
		result[i] = pos
	}
	return result, nil
}

// owner walks all but the last key, it returns the holding container and the leaf key
func (c *Container) owner(op string, expr string, opts []PathOption) (*Container, interface{}, error) {
	if err := c.check(op, expr); err != nil {
		return nil, nil, err
	}
	segments, err := parsePath(expr)
	if err != nil {
		return nil, nil, newError(op, KindUsage, expr, err)
	}
	keys, err := newPathOptions(opts).resolve(segments)
	if err != nil {
		return nil, nil, newError(op, KindUsage, expr, err)
	}
	holder := c
	for _, key := range keys[:len(keys)-1] {
		child, ok := holder.Child(key)
		if !ok {
			return nil, nil, newError(op, KindNotFound, expr, fmt.Errorf("no container at %v", key))
		}
		holder = child
	}
	return holder, keys[len(keys)-1], nil
}

// Value returns a data value at the dotted path, operation names are not resolved
func (c *Container) Value(expr string, opts ...PathOption) (interface{}, error) {
	const op = "Value"
	holder, key, err := c.owner(op, expr, opts)
	if err != nil {
		return nil, err
	}
	value, ok := holder.store.Get(key)
	if !ok {
		return nil, newError(op, KindNotFound, expr, fmt.Errorf("no value at %v", key))
	}
	return value, nil
}

// SetValue assigns a value at the dotted path with Set semantics on the holding container
func (c *Container) SetValue(expr string, value interface{}, opts ...PathOption) error {
	holder, key, err := c.owner("SetValue", expr, opts)
	if err != nil {
		return err
	}
	return holder.Set(key, value)
}
