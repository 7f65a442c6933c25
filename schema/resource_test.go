package schema

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/viant/fieldly/lookup"
	"github.com/viant/toolbox"
	"path"
	"reflect"
	"testing"
)

func TestNewFromURL(t *testing.T) {
	testLocation := toolbox.CallerDirectory(3)
	schema, err := NewFromURL(context.Background(), path.Join(testLocation, "testdata/user.yaml"))
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "user", schema.Name)
	assert.Equal(t, 4, len(schema.Fields))
	assert.NotEmpty(t, schema.SourceURL)

	id, err := schema.Field("Id")
	if !assert.Nil(t, err) {
		return
	}
	assert.True(t, id.Required)
	assert.Equal(t, reflect.TypeOf(0), id.Type())
	assert.Equal(t, lookup.KeyKindSimple, id.Key().Kind())
	if assert.Equal(t, 1, len(id.Checkers())) {
		assert.Nil(t, id.Checkers()[0].Validate(10))
		assert.NotNil(t, id.Checkers()[0].Validate(0))
	}

	email, err := schema.Field("Email")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, lookup.KeyKindChoice, email.Key().Kind())
	assert.Equal(t, "email_address | Email", email.Key().String())
	message, ok := email.Message("abc", "string")
	assert.True(t, ok)
	assert.Equal(t, "field Email with value abc is not a valid email", message)

	tags, err := schema.Field("Tags")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, reflect.TypeOf([]string{}), tags.Type())

	source, err := schema.Field("Source")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, lookup.KeyKindPaths, source.Key().Kind())
	assert.Equal(t, "meta.origin | source", source.Key().String())
	assert.Equal(t, "unknown", source.DefaultValue())
}

func TestLoadFromURL_Errors(t *testing.T) {
	testLocation := toolbox.CallerDirectory(3)
	_, err := NewFromURL(context.Background(), path.Join(testLocation, "testdata/absent.yaml"))
	assert.NotNil(t, err)
}
