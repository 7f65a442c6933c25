package lookup

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		description string
		options     []Option
		expectKind  KeyKind
		expectText  string
		expectNil   bool
		expectError string
	}{
		{
			description: "single alias",
			options:     []Option{WithAlias("id")},
			expectKind:  KeyKindSimple,
			expectText:  "id",
		},
		{
			description: "alias with fallback",
			options:     []Option{WithAlias("id"), WithFallback("identifier")},
			expectKind:  KeyKindChoice,
			expectText:  "id | identifier",
		},
		{
			description: "alias paths",
			options:     []Option{WithPath("data", "items", 0), WithPath("id")},
			expectKind:  KeyKindPaths,
			expectText:  "data.items[0] | id",
		},
		{
			description: "fallback appended after alias paths",
			options:     []Option{WithPath("data", "id"), WithFallback("id")},
			expectKind:  KeyKindPaths,
			expectText:  "data.id | id",
		},
		{
			description: "fallback only",
			options:     []Option{WithFallback("id")},
			expectKind:  KeyKindSimple,
			expectText:  "id",
		},
		{
			description: "no options",
			expectNil:   true,
		},
		{
			description: "alias and aliases are mutually exclusive",
			options:     []Option{WithAlias("id"), WithPath("data", "id")},
			expectError: "mutually exclusive",
		},
		{
			description: "empty aliases",
			options:     []Option{WithAliases()},
			expectError: "at least one element",
		},
		{
			description: "empty path",
			options:     []Option{WithPath()},
			expectError: "at least one element",
		},
		{
			description: "path starting with an index",
			options:     []Option{WithPath(0, "id")},
			expectError: "must be a string",
		},
		{
			description: "unsupported segment type",
			options:     []Option{WithPath("data", true)},
			expectError: "string or int",
		},
		{
			description: "fractional index",
			options:     []Option{WithPath("data", 1.5)},
			expectError: "string or int",
		},
		{
			description: "negative index",
			options:     []Option{WithPath("data", -1)},
			expectError: "non negative",
		},
	}

	for _, testCase := range testCases {
		key, err := New(testCase.options...)
		if testCase.expectError != "" {
			if !assert.NotNil(t, err, testCase.description) {
				continue
			}
			assert.Contains(t, err.Error(), testCase.expectError, testCase.description)
			assert.True(t, IsConfigError(err), testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		if testCase.expectNil {
			assert.Nil(t, key, testCase.description)
			continue
		}
		if !assert.NotNil(t, key, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expectKind, key.Kind(), testCase.description)
		assert.Equal(t, testCase.expectText, key.String(), testCase.description)
	}
}

func TestKey_Mapping(t *testing.T) {
	testCases := []struct {
		description string
		options     []Option
		source      map[string]interface{}
		expectName  string
		expectValue interface{}
		expectFound bool
	}{
		{
			description: "simple match",
			options:     []Option{WithAlias("a")},
			source:      map[string]interface{}{"a": 1},
			expectName:  "a",
			expectValue: 1,
			expectFound: true,
		},
		{
			description: "simple miss",
			options:     []Option{WithAlias("a")},
			source:      map[string]interface{}{},
		},
		{
			description: "choice fallback",
			options:     []Option{WithAlias("a"), WithFallback("b")},
			source:      map[string]interface{}{"b": 2},
			expectName:  "b",
			expectValue: 2,
			expectFound: true,
		},
		{
			description: "choice primary wins when both present",
			options:     []Option{WithAlias("a"), WithFallback("b")},
			source:      map[string]interface{}{"a": 1, "b": 2},
			expectName:  "a",
			expectValue: 1,
			expectFound: true,
		},
		{
			description: "path with index",
			options:     []Option{WithPath("a", 0), WithPath("b")},
			source:      map[string]interface{}{"a": []interface{}{10, 20}},
			expectName:  "a",
			expectValue: 10,
			expectFound: true,
		},
		{
			description: "second path when first is missing",
			options:     []Option{WithPath("a", 0), WithPath("b")},
			source:      map[string]interface{}{"b": 5},
			expectName:  "b",
			expectValue: 5,
			expectFound: true,
		},
		{
			description: "string value refuses indexing",
			options:     []Option{WithPath("a", 0), WithPath("b")},
			source:      map[string]interface{}{"a": "x", "b": 5},
			expectName:  "b",
			expectValue: 5,
			expectFound: true,
		},
		{
			description: "first fully resolved path wins over deeper path",
			options:     []Option{WithPath("a", "b"), WithPath("a", "b", "c")},
			source:      map[string]interface{}{"a": map[string]interface{}{"b": map[string]interface{}{"c": 3}}},
			expectName:  "a",
			expectValue: map[string]interface{}{"c": 3},
			expectFound: true,
		},
		{
			description: "fallback has the lowest priority",
			options:     []Option{WithPath("b"), WithFallback("a")},
			source:      map[string]interface{}{"a": 1, "b": 2},
			expectName:  "b",
			expectValue: 2,
			expectFound: true,
		},
		{
			description: "nested mixed traversal",
			options:     []Option{WithPath("a", "b", 1)},
			source:      map[string]interface{}{"a": map[string]interface{}{"b": []interface{}{"x", "y"}}},
			expectName:  "a",
			expectValue: "y",
			expectFound: true,
		},
		{
			description: "typed slice of maps",
			options:     []Option{WithPath("items", 1, "id")},
			source:      map[string]interface{}{"items": []map[string]interface{}{{"id": 1}, {"id": 2}}},
			expectName:  "items",
			expectValue: 2,
			expectFound: true,
		},
		{
			description: "int keyed map",
			options:     []Option{WithPath("a", 2)},
			source:      map[string]interface{}{"a": map[int]interface{}{2: "two"}},
			expectName:  "a",
			expectValue: "two",
			expectFound: true,
		},
		{
			description: "out of bounds index",
			options:     []Option{WithPath("a", 5)},
			source:      map[string]interface{}{"a": []interface{}{1}},
		},
		{
			description: "present key with nil value",
			options:     []Option{WithAlias("a")},
			source:      map[string]interface{}{"a": nil},
			expectName:  "a",
			expectFound: true,
		},
		{
			description: "scalar mid path",
			options:     []Option{WithPath("a", "b")},
			source:      map[string]interface{}{"a": 1},
		},
	}

	for _, testCase := range testCases {
		key, err := New(testCase.options...)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		name, value, found, err := key.Mapping(testCase.source)
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expectFound, found, testCase.description)
		assert.Equal(t, testCase.expectName, name, testCase.description)
		assert.EqualValues(t, testCase.expectValue, value, testCase.description)
	}
}

func TestKey_Idempotence(t *testing.T) {
	key, err := New(WithPath("a", 0), WithFallback("b"))
	assert.Nil(t, err)
	source := map[string]interface{}{"a": []interface{}{"first"}, "b": "second"}
	for i := 0; i < 3; i++ {
		name, value, found, err := key.Mapping(source)
		assert.Nil(t, err)
		assert.True(t, found)
		assert.Equal(t, "a", name)
		assert.Equal(t, "first", value)
	}
}
