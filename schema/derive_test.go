package schema

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/viant/fieldly/lookup"
	"reflect"
	"testing"
	"time"
)

func TestDerive(t *testing.T) {
	type account struct {
		Id      int       `fieldly:"alias=account_id,fallback,required"`
		Email   string    `fieldly:"minLength=6,pattern=@,message=${Field} is not a valid email"`
		Origin  string    `fieldly:"aliases=meta.origin|source,default=unknown"`
		Created time.Time `fieldly:"format=2006-01-02"`
		Mode    string    `fieldly:"enum=on|off"`
		Secret  string    `fieldly:"-"`
		hidden  string
	}

	schema, err := Derive("", &account{})
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "account", schema.Name)
	assert.Equal(t, 5, len(schema.Fields))
	if !assert.Nil(t, schema.Init(context.Background())) {
		return
	}

	id, err := schema.Field("Id")
	if !assert.Nil(t, err) {
		return
	}
	assert.True(t, id.Required)
	assert.Equal(t, "int", id.DataType)
	assert.Equal(t, lookup.KeyKindChoice, id.Key().Kind())
	assert.Equal(t, "account_id | Id", id.Key().String())

	email, err := schema.Field("Email")
	if !assert.Nil(t, err) {
		return
	}
	if assert.Equal(t, 1, len(email.Checks)) {
		check := email.Checks[0]
		assert.Equal(t, "string", check.Name)
		assert.Equal(t, "@", check.Pattern)
		if assert.NotNil(t, check.MinLength) {
			assert.Equal(t, 6, *check.MinLength)
		}
	}
	message, ok := email.Message("abc", "string")
	assert.True(t, ok)
	assert.Equal(t, "Email is not a valid email", message)

	origin, err := schema.Field("Origin")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, lookup.KeyKindPaths, origin.Key().Kind())
	assert.Equal(t, "meta.origin | source", origin.Key().String())
	assert.Equal(t, "unknown", origin.DefaultValue())

	created, err := schema.Field("Created")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "time", created.DataType)
	assert.Equal(t, "2006-01-02", created.Format)

	mode, err := schema.Field("Mode")
	if !assert.Nil(t, err) {
		return
	}
	if assert.Equal(t, 1, len(mode.Checks)) {
		assert.Equal(t, "enum", mode.Checks[0].Name)
		assert.Equal(t, []interface{}{"on", "off"}, mode.Checks[0].Values)
	}

	_, err = schema.Field("Secret")
	assert.NotNil(t, err)
	_, err = schema.Field("hidden")
	assert.NotNil(t, err)
}

func TestFieldsOf(t *testing.T) {
	testCases := []struct {
		description string
		target      interface{}
		expectError string
	}{
		{
			description: "not a struct",
			target:      42,
			expectError: "expected struct",
		},
		{
			description: "invalid tag key",
			target: struct {
				Id int `fieldly:"identity=1"`
			}{},
			expectError: "invalid fieldly tag key",
		},
		{
			description: "invalid bound",
			target: struct {
				Id int `fieldly:"min=abc"`
			}{},
			expectError: "failed to parse",
		},
		{
			description: "uninferrable check",
			target: struct {
				Data []string `fieldly:"minLength=1"`
			}{},
			expectError: "unable to infer",
		},
	}

	for _, testCase := range testCases {
		_, err := FieldsOf(reflect.TypeOf(testCase.target))
		if !assert.NotNil(t, err, testCase.description) {
			continue
		}
		assert.Contains(t, err.Error(), testCase.expectError, testCase.description)
	}
}
