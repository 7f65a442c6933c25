package shared

import (
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
	"reflect"
	"strings"
)

//TagName defines fieldly struct tag name
const TagName = "fieldly"

//MatchField returns a struct field matching supplied name, trying tag identity,
//case format conversion and underscore insensitive comparison
func MatchField(rType reflect.Type, name string, sourceCase text.CaseFormat) *xunsafe.Field {
	rType = Elem(rType)
	if rType.Kind() != reflect.Struct {
		return nil
	}
	upperCamelName := sourceCase.Format(name, text.CaseFormatUpperCamel)
	if field := xunsafe.FieldByName(rType, upperCamelName); field != nil {
		if sField, ok := rType.FieldByName(upperCamelName); !ok || TagIdentity(sField.Tag) != "-" {
			return field
		}
	}
	lowerName := strings.ToLower(name)
	for i := 0; i < rType.NumField(); i++ {
		sField := rType.Field(i)
		tagName := TagIdentity(sField.Tag)
		if tagName == "-" {
			continue
		}
		if tagName != "" {
			if strings.ToLower(tagName) == lowerName {
				return xunsafe.NewField(sField)
			}
			continue
		}
		if strings.ToLower(sField.Name) == lowerName {
			return xunsafe.NewField(sField)
		}
	}
	for i := 0; i < rType.NumField(); i++ {
		sField := rType.Field(i)
		if TagIdentity(sField.Tag) == "-" {
			continue
		}
		if normalizeKey(sField.Name) == normalizeKey(name) {
			return xunsafe.NewField(sField)
		}
	}
	return nil
}

//TagIdentity returns name declared by the fieldly tag, "-" for excluded fields or empty string
func TagIdentity(tag reflect.StructTag) string {
	value, ok := tag.Lookup(TagName)
	if !ok {
		return ""
	}
	if value == "-" {
		return "-"
	}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "name=") {
			return part[len("name="):]
		}
	}
	return ""
}

func normalizeKey(name string) string {
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, "_", "")
}
