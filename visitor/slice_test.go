package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSliceVisitor(t *testing.T) {
	mySlice := []interface{}{"a", 1, 3.14, true}

	visit, err := SliceVisitorOf[any](mySlice)
	if !assert.Nil(t, err) {
		return
	}
	clone := []interface{}{}
	err = visit(func(index int, element interface{}) (bool, error) {
		clone = append(clone, element)
		return true, nil // continue iteration
	})
	assert.NoError(t, err)
	assert.EqualValues(t, mySlice, clone)
}

func TestAnySliceVisitorOf(t *testing.T) {
	var testCases = []struct {
		description string
		value       interface{}
		expect      []interface{}
		expectError bool
	}{
		{description: "typed slice", value: []string{"a", "b"}, expect: []interface{}{"a", "b"}},
		{description: "reflection slice", value: []int32{1, 2}, expect: []interface{}{int32(1), int32(2)}},
		{description: "array", value: [2]int{3, 4}, expect: []interface{}{3, 4}},
		{description: "not a slice", value: "abc", expectError: true},
	}
	for _, testCase := range testCases {
		visit, err := AnySliceVisitorOf(testCase.value)
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		var actual []interface{}
		err = visit(func(key int, element any) (bool, error) {
			actual = append(actual, element)
			return true, nil
		})
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestAnyTypedSliceVisitorOf_Stop(t *testing.T) {
	visit := AnyTypedSliceVisitorOf([]int{1, 2, 3})
	var actual []interface{}
	err := visit(func(key int, element any) (bool, error) {
		actual = append(actual, element)
		return key < 1, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, []interface{}{1, 2}, actual)
}
