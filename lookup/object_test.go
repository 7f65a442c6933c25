package lookup

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/viant/fieldly/node"
	"testing"
)

type address struct {
	City string
	Zip  string
}

type user struct {
	Id      int
	Name    string `fieldly:"name=full_name"`
	Home    *address
	Tags    []string
	Extra   map[string]interface{}
	Payload *node.Node
}

type record struct {
	attributes map[string]interface{}
}

func (r *record) Attribute(name string) (interface{}, bool, error) {
	value, ok := r.attributes[name]
	return value, ok, nil
}

type failingRecord struct {
	calls int
}

func (r *failingRecord) Attribute(name string) (interface{}, bool, error) {
	r.calls++
	return nil, false, fmt.Errorf("attribute %v is not accessible", name)
}

type attrMap map[string]interface{}

func (m attrMap) Attribute(name string) (interface{}, bool, error) {
	return "attribute " + name, true, nil
}

func TestKey_Object(t *testing.T) {
	aUser := &user{
		Id:   3,
		Name: "Bob",
		Home: &address{City: "Warsaw", Zip: "01-001"},
		Tags: []string{"admin", "ops"},
		Extra: map[string]interface{}{
			"score": 91,
		},
	}
	payload, err := node.ParseString(`{"theme": "dark"}`)
	if !assert.Nil(t, err) {
		return
	}
	aUser.Payload = payload

	testCases := []struct {
		description string
		options     []Option
		source      interface{}
		expectName  string
		expectValue interface{}
		expectFound bool
		expectError bool
	}{
		{
			description: "struct field by lower case alias",
			options:     []Option{WithAlias("id")},
			source:      aUser,
			expectName:  "id",
			expectValue: 3,
			expectFound: true,
		},
		{
			description: "struct field by tag identity",
			options:     []Option{WithAlias("full_name")},
			source:      aUser,
			expectName:  "full_name",
			expectValue: "Bob",
			expectFound: true,
		},
		{
			description: "struct value source",
			options:     []Option{WithAlias("city")},
			source:      address{City: "Krakow"},
			expectName:  "city",
			expectValue: "Krakow",
			expectFound: true,
		},
		{
			description: "nested struct path",
			options:     []Option{WithPath("home", "city")},
			source:      aUser,
			expectName:  "home",
			expectValue: "Warsaw",
			expectFound: true,
		},
		{
			description: "index into struct slice field",
			options:     []Option{WithPath("tags", 1)},
			source:      aUser,
			expectName:  "tags",
			expectValue: "ops",
			expectFound: true,
		},
		{
			description: "map field uses item access",
			options:     []Option{WithPath("extra", "score")},
			source:      aUser,
			expectName:  "extra",
			expectValue: 91,
			expectFound: true,
		},
		{
			description: "tree field uses item access",
			options:     []Option{WithPath("payload", "theme")},
			source:      aUser,
			expectName:  "payload",
			expectValue: node.NewString("dark"),
			expectFound: true,
		},
		{
			description: "string field refuses indexing",
			options:     []Option{WithPath("name", 0)},
			source:      aUser,
		},
		{
			description: "missing struct field",
			options:     []Option{WithAlias("salary")},
			source:      aUser,
		},
		{
			description: "nil pointer mid path",
			options:     []Option{WithPath("home", "city")},
			source:      &user{},
		},
		{
			description: "typed nil source",
			options:     []Option{WithAlias("id")},
			source:      (*user)(nil),
		},
		{
			description: "nil source",
			options:     []Option{WithAlias("id")},
		},
		{
			description: "map source uses item access",
			options:     []Option{WithAlias("id")},
			source:      map[string]interface{}{"id": 4},
			expectName:  "id",
			expectValue: 4,
			expectFound: true,
		},
		{
			description: "mapping miss never falls back to attributes",
			options:     []Option{WithAlias("missing")},
			source:      attrMap{"present": 1},
		},
		{
			description: "attributer match",
			options:     []Option{WithAlias("country")},
			source:      &record{attributes: map[string]interface{}{"country": "PL"}},
			expectName:  "country",
			expectValue: "PL",
			expectFound: true,
		},
		{
			description: "choice consults fallback on attributer miss",
			options:     []Option{WithAlias("region"), WithFallback("country")},
			source:      &record{attributes: map[string]interface{}{"country": "PL"}},
			expectName:  "country",
			expectValue: "PL",
			expectFound: true,
		},
		{
			description: "attributer fault propagates",
			options:     []Option{WithAlias("country")},
			source:      &failingRecord{},
			expectError: true,
		},
		{
			description: "path choices on struct",
			options:     []Option{WithPath("home", "street"), WithPath("home", "zip")},
			source:      aUser,
			expectName:  "home",
			expectValue: "01-001",
			expectFound: true,
		},
	}

	for _, testCase := range testCases {
		key, err := New(testCase.options...)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		name, value, found, err := key.Object(testCase.source)
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expectFound, found, testCase.description)
		assert.Equal(t, testCase.expectName, name, testCase.description)
		assert.EqualValues(t, testCase.expectValue, value, testCase.description)
	}
}

func TestKey_ObjectFaultStopsLookup(t *testing.T) {
	source := &failingRecord{}

	key, err := New(WithAlias("a"), WithFallback("b"))
	assert.Nil(t, err)
	_, _, _, err = key.Object(source)
	assert.NotNil(t, err)
	assert.Equal(t, 1, source.calls, "fallback is not consulted after a fault")

	source.calls = 0
	key, err = New(WithPath("a", "b"), WithPath("c"))
	assert.Nil(t, err)
	_, _, _, err = key.Object(source)
	assert.NotNil(t, err)
	assert.Equal(t, 1, source.calls, "later paths are not consulted after a fault")
}
