package shared

import (
	"github.com/stretchr/testify/assert"
	"github.com/viant/tagly/format/text"
	"reflect"
	"testing"
)

func TestMatchField(t *testing.T) {
	type entity struct {
		ID      int
		Name    string `fieldly:"name=full_name"`
		Comment string `fieldly:"-"`
		UserID  int
	}

	testCases := []struct {
		description string
		name        string
		sourceCase  text.CaseFormat
		expect      string
	}{
		{
			description: "exact name",
			name:        "ID",
			sourceCase:  text.CaseFormatUpperCamel,
			expect:      "ID",
		},
		{
			description: "lower camel to upper camel",
			name:        "userID",
			sourceCase:  text.CaseFormatLowerCamel,
			expect:      "UserID",
		},
		{
			description: "underscore insensitive",
			name:        "user_id",
			sourceCase:  text.CaseFormatLowerUnderscore,
			expect:      "UserID",
		},
		{
			description: "tag identity",
			name:        "full_name",
			sourceCase:  text.CaseFormatLowerUnderscore,
			expect:      "Name",
		},
		{
			description: "excluded field",
			name:        "Comment",
			sourceCase:  text.CaseFormatUpperCamel,
			expect:      "",
		},
	}

	rType := reflect.TypeOf(entity{})
	for _, testCase := range testCases {
		field := MatchField(rType, testCase.name, testCase.sourceCase)
		if testCase.expect == "" {
			assert.Nil(t, field, testCase.description)
			continue
		}
		if !assert.NotNil(t, field, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, field.Name, testCase.description)
	}
}

func TestTagIdentity(t *testing.T) {
	testCases := []struct {
		description string
		tag         reflect.StructTag
		expect      string
	}{
		{
			description: "named tag",
			tag:         `fieldly:"name=id,required"`,
			expect:      "id",
		},
		{
			description: "excluded",
			tag:         `fieldly:"-"`,
			expect:      "-",
		},
		{
			description: "no name pair",
			tag:         `fieldly:"required"`,
			expect:      "",
		},
		{
			description: "no tag",
			tag:         `json:"id"`,
			expect:      "",
		},
	}

	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, TagIdentity(testCase.tag), testCase.description)
	}
}
