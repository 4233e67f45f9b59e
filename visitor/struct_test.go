package visitor

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/tagly/format/text"
)

func Test_StructVisitor_Visit(t *testing.T) {

	type Employee struct {
		ID      int
		Name    string `json:"name,omitempty"`
		Company string
		Secret  string `json:"-"`
		hidden  string
	}

	emp := &Employee{ID: 1, Name: "John Doe", Company: "OpenAI", Secret: "x", hidden: "y"}

	visit, err := StructVisitorOf(emp)
	if !assert.Nil(t, err) {
		return
	}
	var actual = map[string]interface{}{}
	var keys []string
	err = visit(func(key string, value interface{}) (bool, error) {
		keys = append(keys, key)
		actual[key] = value
		return true, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, []string{"ID", "name", "Company"}, keys)
	assert.EqualValues(t, map[string]interface{}{"ID": 1, "name": "John Doe", "Company": "OpenAI"}, actual)
}

func Test_StructVisitor_CaseFormat(t *testing.T) {
	type Account struct {
		UserName string
		Email    string `json:"mail"`
	}
	visit, err := StructVisitorOf(Account{UserName: "bob", Email: "b@x"}, WithCaseFormat(text.CaseFormatLowerUnderscore))
	if !assert.Nil(t, err) {
		return
	}
	var keys []string
	err = visit(func(key string, value interface{}) (bool, error) {
		keys = append(keys, key)
		return true, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, []string{"user_name", "mail"}, keys)
}

func TestIsStructured(t *testing.T) {
	type record struct{ ID int }
	var nilRecord *record
	var testCases = []struct {
		description string
		value       interface{}
		expect      bool
	}{
		{description: "map", value: map[string]int{}, expect: true},
		{description: "slice", value: []int{}, expect: true},
		{description: "array", value: [1]int{}, expect: true},
		{description: "struct", value: record{}, expect: true},
		{description: "struct pointer", value: &record{}, expect: true},
		{description: "nil struct pointer", value: nilRecord},
		{description: "bytes", value: []byte("x")},
		{description: "time", value: time.Now()},
		{description: "string", value: "x"},
		{description: "nil", value: nil},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, IsStructured(testCase.value), testCase.description)
	}
}

func TestAnyOf(t *testing.T) {
	type record struct {
		ID   int
		Tags []string
	}
	var testCases = []struct {
		description string
		value       interface{}
		expectKeys  []interface{}
		expectOk    bool
	}{
		{description: "slice", value: []string{"a", "b"}, expectKeys: []interface{}{0, 1}, expectOk: true},
		{description: "map", value: map[string]int{"b": 1, "a": 2}, expectKeys: []interface{}{"a", "b"}, expectOk: true},
		{description: "struct", value: record{ID: 1}, expectKeys: []interface{}{"ID", "Tags"}, expectOk: true},
		{description: "scalar", value: 10},
	}
	for _, testCase := range testCases {
		visit, ok := AnyOf(testCase.value)
		assert.EqualValues(t, testCase.expectOk, ok, testCase.description)
		if !ok {
			continue
		}
		var keys []interface{}
		err := visit(func(key any, element any) (bool, error) {
			keys = append(keys, key)
			return true, nil
		})
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expectKeys, keys, testCase.description)
	}
}

func Test_typeCache_lookup(t *testing.T) {
	type Record struct {
		A      int
		hidden string
		B      string
	}
	rType := reflect.TypeOf(Record{})
	first := structTypes.lookup(rType)
	second := structTypes.lookup(rType)
	assert.Same(t, first, second)
	assert.EqualValues(t, []int{0, 2}, first.exported)
}
