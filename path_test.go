package watchable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_Value(t *testing.T) {
	container := mustNew(t, map[string]interface{}{
		"a": map[string]interface{}{"b": []interface{}{"x", map[string]interface{}{"c": 3}}},
		"n": 1,
	})
	var testCases = []struct {
		description string
		path        string
		pathOptions func() []PathOption
		expect      interface{}
		expectErr   error
	}{
		{description: "top level", path: "n", expect: 1},
		{description: "dotted position", path: "a.b.0", expect: "x"},
		{description: "bracket position", path: "a.b[1].c", expect: 3},
		{description: "placeholder", path: "a.b[].c", pathOptions: func() []PathOption {
			return []PathOption{WithPathIndex(1)}
		}, expect: 3},
		{description: "missing leaf", path: "a.z", expectErr: ErrNotFound},
		{description: "missing holder", path: "n.x", expectErr: ErrNotFound},
		{description: "missing placeholder index", path: "a.b[].c", expectErr: ErrUsage},
		{description: "empty segment", path: "a..b", expectErr: ErrUsage},
		{description: "unbalanced", path: "a.b[1", expectErr: ErrUsage},
		{description: "empty", path: "", expectErr: ErrUsage},
	}
	for _, testCase := range testCases {
		var opts []PathOption
		if testCase.pathOptions != nil {
			opts = testCase.pathOptions()
		}
		actual, err := container.Value(testCase.path, opts...)
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestContainer_SetValue(t *testing.T) {
	container := mustNew(t, map[string]interface{}{"a": map[string]interface{}{"b": []int{1, 2}}})
	b, err := container.Value("a.b")
	require.NoError(t, err)
	events := newRecorder()
	events.watch(t, "b", b.(*Container))
	events.watch(t, "container", container)

	require.NoError(t, container.SetValue("a.b[]", 5, WithPathIndex(1)))
	assert.EqualValues(t, []string{"b", "container"}, events.events)
	assert.EqualValues(t, map[string]interface{}{"a": map[string]interface{}{"b": []interface{}{1, 5}}}, container.Serialize())

	events.events = nil
	require.NoError(t, container.SetValue("a.b.1", 5))
	assert.Empty(t, events.events)

	assert.ErrorIs(t, container.SetValue("x.y", 1), ErrNotFound)
	require.NoError(t, b.(*Container).Freeze())
	assert.ErrorIs(t, container.SetValue("a.b.0", 7), ErrFrozen)
}
