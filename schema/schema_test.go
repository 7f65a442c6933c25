package schema

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/viant/fieldly/checker"
	"github.com/viant/fieldly/lookup"
	"github.com/viant/xreflect"
	"reflect"
	"testing"
)

func TestSchema_Init(t *testing.T) {
	moneyTypes := xreflect.NewTypes(xreflect.WithTypes(
		xreflect.NewType("Money", xreflect.WithReflectType(reflect.TypeOf(0.0))),
	))

	testCases := []struct {
		description   string
		schema        *Schema
		options       []Option
		field         string
		expectKind    lookup.KeyKind
		expectKey     string
		expectType    reflect.Type
		expectDefault interface{}
		expectError   bool
	}{
		{
			description: "field matched by name",
			schema:      New("user", &Field{Name: "Id"}),
			field:       "Id",
			expectKind:  lookup.KeyKindSimple,
			expectKey:   "Id",
		},
		{
			description: "alias without fallback",
			schema:      New("user", &Field{Name: "Id", Alias: "user_id"}),
			field:       "Id",
			expectKind:  lookup.KeyKindSimple,
			expectKey:   "user_id",
		},
		{
			description: "alias with fallback",
			schema:      New("user", &Field{Name: "Id", Alias: "user_id", Fallback: true}),
			field:       "Id",
			expectKind:  lookup.KeyKindChoice,
			expectKey:   "user_id | Id",
		},
		{
			description: "alias paths",
			schema:      New("user", &Field{Name: "Id", Aliases: []string{"data.items[0].id", "pk"}}),
			field:       "Id",
			expectKind:  lookup.KeyKindPaths,
			expectKey:   "data.items[0].id | pk",
		},
		{
			description: "alias paths with fallback",
			schema:      New("user", &Field{Name: "Id", Aliases: []string{"data.id"}, Fallback: true}),
			field:       "Id",
			expectKind:  lookup.KeyKindPaths,
			expectKey:   "data.id | Id",
		},
		{
			description:   "builtin type with default",
			schema:        New("user", &Field{Name: "Limit", DataType: "int", Default: "25"}),
			field:         "Limit",
			expectKind:    lookup.KeyKindSimple,
			expectKey:     "Limit",
			expectType:    reflect.TypeOf(0),
			expectDefault: 25,
		},
		{
			description: "type definition",
			schema: &Schema{
				Name:   "user",
				Types:  []*TypeDefinition{{Name: "Tags", DataType: "[]string"}},
				Fields: []*Field{{Name: "Tags", DataType: "Tags"}},
			},
			field:      "Tags",
			expectType: reflect.TypeOf([]string{}),
		},
		{
			description: "shared type registry",
			schema:      New("account", &Field{Name: "Balance", DataType: "Money"}),
			options:     []Option{WithTypes(moneyTypes)},
			field:       "Balance",
			expectType:  reflect.TypeOf(0.0),
		},
		{
			description: "alias and aliases are mutually exclusive",
			schema:      New("user", &Field{Name: "Id", Alias: "pk", Aliases: []string{"data.id"}}),
			expectError: true,
		},
		{
			description: "invalid alias path",
			schema:      New("user", &Field{Name: "Id", Aliases: []string{"data..id"}}),
			expectError: true,
		},
		{
			description: "duplicate field",
			schema:      New("user", &Field{Name: "Id"}, &Field{Name: "Id"}),
			expectError: true,
		},
		{
			description: "empty field name",
			schema:      New("user", &Field{}),
			expectError: true,
		},
		{
			description: "unknown data type",
			schema:      New("user", &Field{Name: "Id", DataType: "Mystery"}),
			expectError: true,
		},
		{
			description: "duplicate type definition",
			schema: &Schema{
				Name:  "user",
				Types: []*TypeDefinition{{Name: "Tags", DataType: "[]string"}, {Name: "Tags", DataType: "[]int"}},
			},
			expectError: true,
		},
		{
			description: "unknown check",
			schema:      New("user", &Field{Name: "Id", Checks: []*checker.Check{{Name: "mystery"}}}),
			expectError: true,
		},
		{
			description: "invalid check pattern",
			schema:      New("user", &Field{Name: "Id", Checks: []*checker.Check{{Name: "string", Pattern: "["}}}),
			expectError: true,
		},
		{
			description: "invalid case format",
			schema:      &Schema{Name: "user", CaseFormat: "columnar", Fields: []*Field{{Name: "Id"}}},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		err := testCase.schema.Init(context.Background(), testCase.options...)
		if testCase.expectError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		field, err := testCase.schema.Field(testCase.field)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		if testCase.expectKind != 0 {
			assert.Equal(t, testCase.expectKind, field.Key().Kind(), testCase.description)
			assert.Equal(t, testCase.expectKey, field.Key().String(), testCase.description)
		}
		if testCase.expectType != nil {
			assert.Equal(t, testCase.expectType, field.Type(), testCase.description)
		}
		if testCase.expectDefault != nil {
			assert.Equal(t, testCase.expectDefault, field.DefaultValue(), testCase.description)
		}
	}
}

func TestSchema_InitIdempotence(t *testing.T) {
	schema := New("user", &Field{Name: "Id"})
	assert.Nil(t, schema.Init(context.Background()))
	assert.Nil(t, schema.Init(context.Background()))
	field, err := schema.Field("Id")
	assert.Nil(t, err)
	assert.NotNil(t, field.Key())
}

func TestField_Message(t *testing.T) {
	schema := New("user",
		&Field{Name: "Email", ErrorMessage: "field ${Field} with value '${Value}' failed ${Check} check"},
		&Field{Name: "Id"},
	)
	err := schema.Init(context.Background())
	if !assert.Nil(t, err) {
		return
	}
	email, err := schema.Field("Email")
	if !assert.Nil(t, err) {
		return
	}
	message, ok := email.Message("abc", "string")
	assert.True(t, ok)
	assert.Equal(t, "field Email with value 'abc' failed string check", message)

	id, err := schema.Field("Id")
	if !assert.Nil(t, err) {
		return
	}
	_, ok = id.Message(1, "int")
	assert.False(t, ok)
}
