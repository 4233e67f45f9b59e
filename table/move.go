package table

import (
	"fmt"
	"math"
	"sort"

	"github.com/viant/watchable/conv"
)

// Move copies entries at positions [from, to] to positions starting at target of dest table.
// Nil dest means the same table; overlapping ranges are handled.
// Positions past the last source entry copy as nil, which clears the matching dest entries.
func (t *Table) Move(from, to, target int, dest *Table) error {
	if dest == nil {
		dest = t
	}
	if dest.frozen {
		return ErrFrozen
	}
	if to < from {
		return nil
	}
	if from < 0 || target < 0 {
		return fmt.Errorf("%w: [%v, %v] -> %v", ErrOutOfRange, from, to, target)
	}
	span := to - from
	if span == math.MaxInt {
		return fmt.Errorf("%w: too many elements to move", ErrOutOfRange)
	}
	if target > math.MaxInt-span {
		return fmt.Errorf("%w: destination wrap around", ErrOutOfRange)
	}
	last := min(to, t.lastPosition())
	var values []interface{}
	if last >= from {
		values = make([]interface{}, 0, last-from+1)
		for pos := from; pos <= last; pos++ {
			value, _ := t.Get(pos)
			values = append(values, value)
		}
	}
	for i, value := range values {
		if err := dest.Set(target+i, value); err != nil {
			return err
		}
	}
	for pos := min(target+span, dest.lastPosition()); pos >= target+len(values); pos-- {
		if err := dest.Set(pos, nil); err != nil {
			return err
		}
	}
	return nil
}

// lastPosition returns the highest non-negative integer key, -1 if there is none
func (t *Table) lastPosition() int {
	result := len(t.list) - 1
	for _, key := range t.keys {
		if pos, ok := key.(int); ok && pos > result {
			result = pos
		}
	}
	return result
}

// Sort sorts the list part in place with less, nil less uses the scalar ordering
func (t *Table) Sort(less func(a, b interface{}) bool) error {
	if t.frozen {
		return ErrFrozen
	}
	if less == nil {
		for i := 1; i < len(t.list); i++ {
			if _, err := conv.Compare(t.list[0], t.list[i]); err != nil {
				return fmt.Errorf("failed to sort: %w", err)
			}
		}
		less = func(a, b interface{}) bool {
			c, _ := conv.Compare(a, b)
			return c < 0
		}
	}
	sort.SliceStable(t.list, func(i, j int) bool {
		return less(t.list[i], t.list[j])
	})
	return nil
}
