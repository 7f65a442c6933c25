package schema

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/viant/fieldly/checker"
	"github.com/viant/fieldly/shared"
	"github.com/viant/tagly/tags"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})
var uuidType = reflect.TypeOf(uuid.UUID{})

//Derive creates a schema from the supplied struct target
func Derive(name string, target interface{}) (*Schema, error) {
	rType := reflect.TypeOf(target)
	fields, err := FieldsOf(rType)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = shared.Elem(rType).Name()
	}
	return &Schema{Name: name, Fields: fields}, nil
}

//FieldsOf derives schema fields from exported struct fields and their fieldly tags
func FieldsOf(rType reflect.Type) ([]*Field, error) {
	rType = shared.Elem(rType)
	if rType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct but had: %s", rType.Kind())
	}
	var result []*Field
	for i := 0; i < rType.NumField(); i++ {
		sField := rType.Field(i)
		if sField.PkgPath != "" {
			continue
		}
		tagValue, _ := sField.Tag.Lookup(shared.TagName)
		if tagValue == "-" {
			continue
		}
		field, err := deriveField(sField, tagValue)
		if err != nil {
			return nil, err
		}
		result = append(result, field)
	}
	return result, nil
}

func deriveField(sField reflect.StructField, tagValue string) (*Field, error) {
	field := &Field{Name: sField.Name, Tag: string(sField.Tag), DataType: builtinName(sField.Type)}
	if tagValue == "" {
		return field, nil
	}
	check := &checker.Check{}
	values := tags.Values(tagValue)
	err := values.MatchPairs(func(key, value string) error {
		var err error
		switch strings.ToLower(key) {
		case "name":
			field.Name = strings.TrimSpace(value)
		case "alias":
			field.Alias = strings.TrimSpace(value)
		case "aliases":
			for _, item := range strings.Split(value, "|") {
				field.Aliases = append(field.Aliases, strings.TrimSpace(item))
			}
		case "fallback":
			field.Fallback = asFlag(value)
		case "required":
			field.Required = asFlag(value)
		case "default":
			field.Default = value
		case "format":
			field.Format = value
		case "datatype":
			field.DataType = strings.TrimSpace(value)
		case "message":
			field.ErrorMessage = value
		case "check":
			check.Name = strings.ToLower(strings.TrimSpace(value))
		case "strict":
			check.Strict = asFlag(value)
		case "pattern":
			check.Pattern = value
		case "transform":
			check.Transform = value
		case "minlength":
			check.MinLength, err = asIntPtr(value)
		case "maxlength":
			check.MaxLength, err = asIntPtr(value)
		case "min":
			check.Min, err = asFloatPtr(value)
		case "max":
			check.Max, err = asFloatPtr(value)
		case "multipleof":
			check.MultipleOf, err = asFloatPtr(value)
		case "enum":
			check.Name = "enum"
			for _, item := range strings.Split(value, "|") {
				check.Values = append(check.Values, strings.TrimSpace(item))
			}
		default:
			return fmt.Errorf("invalid fieldly tag key: '%s'", key)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse %v field tag: %w", sField.Name, err)
	}
	if !isEmptyCheck(check) {
		if check.Name == "" {
			check.Name = field.DataType
		}
		if check.Name == "" {
			return nil, fmt.Errorf("unable to infer %v field check, use check=name", sField.Name)
		}
		field.Checks = append(field.Checks, check)
	}
	return field, nil
}

func builtinName(rType reflect.Type) string {
	for rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	switch rType {
	case timeType:
		return "time"
	case uuidType:
		return "uuid"
	}
	switch rType.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	}
	return ""
}

func isEmptyCheck(check *checker.Check) bool {
	return check.Name == "" && !check.Strict && check.MinLength == nil && check.MaxLength == nil &&
		check.Pattern == "" && check.Transform == "" && check.Min == nil && check.Max == nil &&
		check.MultipleOf == nil && len(check.Values) == 0
}

func asFlag(value string) bool {
	return value == "" || strings.TrimSpace(value) == "true"
}

func asIntPtr(value string) (*int, error) {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func asFloatPtr(value string) (*float64, error) {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
