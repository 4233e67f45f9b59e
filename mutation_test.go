package watchable

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_Insert(t *testing.T) {
	parent := mustNew(t, map[string]interface{}{"list": []int{10, 20}})
	container, ok := parent.Child("list")
	require.True(t, ok)
	events := newRecorder()
	events.watch(t, "parent", parent)

	require.NoError(t, container.Insert(5))
	assert.EqualValues(t, []interface{}{10, 20, 5}, container.Serialize())
	assert.EqualValues(t, []string{"parent"}, events.events)

	require.NoError(t, container.Insert(map[string]interface{}{"x": 1}))
	child, ok := container.Child(3)
	require.True(t, ok)
	assert.Same(t, container, child.Parent())

	err := container.Insert(nil)
	assert.ErrorIs(t, err, ErrUsage)
	assert.EqualValues(t, 2, len(events.events))
}

func TestContainer_InsertAt(t *testing.T) {
	container := mustNew(t, []string{"a", "c"})
	require.NoError(t, container.InsertAt(1, "b"))
	assert.EqualValues(t, []interface{}{"a", "b", "c"}, container.Serialize())
	assert.ErrorIs(t, container.InsertAt(7, "x"), ErrUsage)
	assert.ErrorIs(t, container.InsertAt(0, nil), ErrUsage)
}

func TestContainer_Remove(t *testing.T) {
	var testCases = []struct {
		description string
		initial     interface{}
		pos         []interface{}
		expectValue interface{}
		expect      interface{}
		expectErr   error
	}{
		{description: "last position", initial: []int{1, 2, 3}, expectValue: 3, expect: []interface{}{1, 2}},
		{description: "by position", initial: []int{1, 2, 3}, pos: []interface{}{0}, expectValue: 1, expect: []interface{}{2, 3}},
		{description: "by integral float position", initial: []int{1, 2, 3}, pos: []interface{}{1.0}, expectValue: 2, expect: []interface{}{1, 3}},
		{description: "by value", initial: []string{"a", "b", "c"}, pos: []interface{}{"b"}, expectValue: "b", expect: []interface{}{"a", "c"}},
		{description: "by keyed value", initial: map[string]interface{}{"k": "v", "z": 1}, pos: []interface{}{"v"}, expectValue: "v", expect: map[string]interface{}{"z": 1}},
		{description: "by key", initial: map[string]interface{}{"k": "v", "z": 1}, pos: []interface{}{"k"}, expectValue: "v", expect: map[string]interface{}{"z": 1}},
		{description: "empty list", initial: []int{}, expectValue: nil, expect: []interface{}{}},
		{description: "position out of range", initial: []int{1}, pos: []interface{}{4}, expect: []interface{}{1}, expectErr: ErrUsage},
		{description: "fractional position", initial: []int{1}, pos: []interface{}{0.5}, expect: []interface{}{1}, expectErr: ErrUsage},
		{description: "missing key", initial: []int{10, 20}, pos: []interface{}{"missing-key"}, expect: []interface{}{10, 20}, expectErr: ErrNotFound},
		{description: "too many arguments", initial: []int{1}, pos: []interface{}{0, 1}, expect: []interface{}{1}, expectErr: ErrUsage},
	}
	for _, testCase := range testCases {
		container := mustNew(t, testCase.initial)
		fired := 0
		_, err := container.Subscribe(func() { fired++ })
		require.NoError(t, err)
		value, err := container.Remove(testCase.pos...)
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			assert.EqualValues(t, 0, fired, testCase.description)
		} else {
			assert.NoError(t, err, testCase.description)
			assert.EqualValues(t, testCase.expectValue, value, testCase.description)
			assert.EqualValues(t, 1, fired, testCase.description)
		}
		assert.EqualValues(t, testCase.expect, container.Serialize(), testCase.description)
	}
}

func TestContainer_RemoveNotFoundError(t *testing.T) {
	container := mustNew(t, []int{10, 20})
	_, err := container.Remove("missing-key")
	var containerErr *Error
	require.ErrorAs(t, err, &containerErr)
	assert.EqualValues(t, KindNotFound, containerErr.Kind)
	assert.EqualValues(t, "Remove", containerErr.Op)
	assert.EqualValues(t, "missing-key", containerErr.Key)
	assert.True(t, strings.Contains(err.Error(), "not found"))
}

func TestContainer_Clear(t *testing.T) {
	container := mustNew(t, map[string]interface{}{"a": 1, "b": []int{1}})
	fired := 0
	_, _ = container.Subscribe(func() { fired++ })
	require.NoError(t, container.Clear())
	assert.EqualValues(t, 0, container.Len())
	assert.EqualValues(t, 1, fired)
}

func TestContainer_Move(t *testing.T) {
	container := mustNew(t, []int{1, 2, 3, 4})
	require.NoError(t, container.Move(0, 1, 2))
	assert.EqualValues(t, []interface{}{1, 2, 1, 2}, container.Serialize())

	source := mustNew(t, []interface{}{"a", map[string]interface{}{"x": 1}})
	dest := mustNew(t, []interface{}{"z"})
	sourceFired, destFired := 0, 0
	_, _ = source.Subscribe(func() { sourceFired++ })
	_, _ = dest.Subscribe(func() { destFired++ })
	require.NoError(t, source.Move(0, 1, 1, dest))
	assert.EqualValues(t, []interface{}{"z", "a", map[string]interface{}{"x": 1}}, dest.Serialize())
	assert.EqualValues(t, 1, sourceFired)
	assert.EqualValues(t, 1, destFired)

	moved, ok := dest.Child(2)
	require.True(t, ok)
	original, ok := source.Child(1)
	require.True(t, ok)
	assert.NotSame(t, original, moved)
	assert.Same(t, dest, moved.Parent())

	require.NoError(t, dest.Freeze())
	assert.ErrorIs(t, source.Move(0, 0, 0, dest), ErrFrozen)
}

func TestContainer_MoveWideRange(t *testing.T) {
	var testCases = []struct {
		description string
		initial     []int
		from, to    int
		target      int
		expect      []interface{}
		expectErr   error
	}{
		{description: "range past the end", initial: []int{1, 2}, from: 1, to: math.MaxInt, target: 0, expect: []interface{}{2}},
		{description: "too many elements", initial: []int{1, 2}, from: 0, to: math.MaxInt, target: 0, expect: []interface{}{1, 2}, expectErr: ErrUsage},
		{description: "destination wrap around", initial: []int{1, 2}, from: 0, to: 1, target: math.MaxInt, expect: []interface{}{1, 2}, expectErr: ErrUsage},
	}
	for _, testCase := range testCases {
		container := mustNew(t, testCase.initial)
		fired := 0
		_, _ = container.Subscribe(func() { fired++ })
		var err error
		assert.NotPanics(t, func() {
			err = container.Move(testCase.from, testCase.to, testCase.target)
		}, testCase.description)
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			assert.EqualValues(t, 0, fired, testCase.description)
		} else {
			assert.NoError(t, err, testCase.description)
			assert.EqualValues(t, 1, fired, testCase.description)
		}
		assert.EqualValues(t, testCase.expect, container.Serialize(), testCase.description)
	}

	source := mustNew(t, []interface{}{map[string]interface{}{"x": 1}})
	dest := mustNew(t, []int{})
	assert.NotPanics(t, func() {
		require.NoError(t, source.Move(0, math.MaxInt-1, 0, dest))
	})
	assert.EqualValues(t, []interface{}{map[string]interface{}{"x": 1}}, dest.Serialize())
	moved, ok := dest.Child(0)
	require.True(t, ok)
	assert.Same(t, dest, moved.Parent())
}

func TestContainer_Sort(t *testing.T) {
	container := mustNew(t, []int{3, 1, 2})
	require.NoError(t, container.Sort(nil))
	assert.EqualValues(t, []interface{}{1, 2, 3}, container.Serialize())

	require.NoError(t, container.Sort(func(a, b interface{}) bool {
		return a.(int) > b.(int)
	}))
	assert.EqualValues(t, []interface{}{3, 2, 1}, container.Serialize())

	mixed := mustNew(t, []interface{}{1, "a"})
	assert.ErrorIs(t, mixed.Sort(nil), ErrUsage)
}

func TestContainer_Concat(t *testing.T) {
	container := mustNew(t, []interface{}{"a", 1, "b"})
	var testCases = []struct {
		description string
		sep         string
		bounds      []int
		expect      string
		expectError bool
	}{
		{description: "full range", expect: "a1b"},
		{description: "separator", sep: ", ", expect: "a, 1, b"},
		{description: "from", sep: "-", bounds: []int{1}, expect: "1-b"},
		{description: "range", sep: "-", bounds: []int{0, 1}, expect: "a-1"},
		{description: "out of range", bounds: []int{0, 5}, expectError: true},
	}
	for _, testCase := range testCases {
		actual, err := container.Concat(testCase.sep, testCase.bounds...)
		if testCase.expectError {
			assert.ErrorIs(t, err, ErrUsage, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}

	nested := mustNew(t, []interface{}{"a", []int{1}})
	_, err := nested.Concat(",")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestContainer_FindUnpack(t *testing.T) {
	container := mustNew(t, []string{"a", "b", "a"})
	key, ok := container.Find("a")
	assert.True(t, ok)
	assert.EqualValues(t, 0, key)
	key, ok = container.Find("a", 1)
	assert.True(t, ok)
	assert.EqualValues(t, 2, key)
	_, ok = container.Find("z")
	assert.False(t, ok)

	assert.EqualValues(t, []interface{}{"a", "b", "a"}, container.Unpack())
	assert.EqualValues(t, []interface{}{"b", "a"}, container.Unpack(1))
	assert.EqualValues(t, []interface{}{"b"}, container.Unpack(1, 1))
	assert.EqualValues(t, []interface{}{}, container.Unpack(2, 1))
}

func TestContainer_GetEntries(t *testing.T) {
	container := mustNew(t, []int{1})
	fired := 0
	_, _ = container.Subscribe(func() { fired++ })
	entries := container.GetEntries()
	require.NoError(t, entries.Append(2))
	assert.EqualValues(t, []interface{}{1, 2}, container.Serialize())
	assert.EqualValues(t, 0, fired)
}

func TestContainer_Freeze(t *testing.T) {
	container := mustNew(t, map[string]interface{}{"list": []int{2, 1}, "k": "v"})
	require.NoError(t, container.Insert(1))
	require.NoError(t, container.Freeze())
	require.NoError(t, container.Freeze())
	assert.True(t, container.IsFrozen())

	assert.ErrorIs(t, container.Insert(2), ErrFrozen)
	_, err := container.Remove()
	assert.ErrorIs(t, err, ErrFrozen)
	_, err = container.Remove("k")
	assert.ErrorIs(t, err, ErrFrozen)
	assert.ErrorIs(t, container.Clear(), ErrFrozen)
	assert.ErrorIs(t, container.Move(0, 0, 1), ErrFrozen)
	assert.ErrorIs(t, container.Sort(nil), ErrFrozen)
	assert.ErrorIs(t, container.Set("k", "x"), ErrFrozen)
	assert.ErrorIs(t, container.InsertAt(0, 1), ErrFrozen)
	_, err = container.Concat("")
	assert.ErrorIs(t, err, ErrFrozen)

	key, ok := container.Find("v")
	assert.True(t, ok)
	assert.EqualValues(t, "k", key)
	assert.EqualValues(t, []interface{}{1}, container.Unpack())
	assert.NotNil(t, container.GetEntries())
	assert.EqualValues(t, 3, len(container.Keys()))
	clone := container.Clone()
	assert.False(t, clone.IsFrozen())
	require.NoError(t, clone.Insert(2))

	list, ok := container.Child("list")
	require.True(t, ok)
	assert.False(t, list.IsFrozen())
	require.NoError(t, list.Sort(nil))
	assert.EqualValues(t, []interface{}{1, 2}, list.Serialize())
}
