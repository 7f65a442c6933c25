package lookup

import (
	"github.com/viant/fieldly/node"
	"github.com/viant/fieldly/shared"
	"reflect"
)

//mappingStep resolves one path segment against a mapping style value,
//absence is the only failure mode
func mappingStep(current interface{}, segment Segment) (interface{}, bool) {
	switch actual := segment.(type) {
	case *Name:
		return mappingKey(current, actual.value)
	case *Index:
		return mappingIndex(current, actual.value)
	}
	return nil, false
}

//mappingKey returns value for the supplied key
func mappingKey(current interface{}, key string) (interface{}, bool) {
	if current == nil {
		return nil, false
	}
	switch actual := current.(type) {
	case map[string]interface{}:
		value, ok := actual[key]
		return value, ok
	case *node.Node:
		child, ok := actual.Value(key)
		if !ok {
			return nil, false
		}
		return child, true
	}
	value := shared.Deref(current)
	if value == nil {
		return nil, false
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.Map {
		return nil, false
	}
	keyType := rValue.Type().Key()
	if keyType.Kind() != reflect.String {
		return nil, false
	}
	item := rValue.MapIndex(reflect.ValueOf(key).Convert(keyType))
	if !item.IsValid() {
		return nil, false
	}
	return item.Interface(), true
}

//isMappingLike returns true if value can be accessed by key
func isMappingLike(current interface{}) bool {
	if current == nil {
		return false
	}
	switch current.(type) {
	case map[string]interface{}, *node.Node:
		return true
	}
	value := shared.Deref(current)
	if value == nil {
		return false
	}
	return reflect.ValueOf(value).Kind() == reflect.Map
}

//mappingIndex returns i-th item of a sequence value, string values are never indexable
func mappingIndex(current interface{}, index int) (interface{}, bool) {
	if current == nil {
		return nil, false
	}
	switch actual := current.(type) {
	case string, []byte:
		return nil, false
	case []interface{}:
		if index >= len(actual) {
			return nil, false
		}
		return actual[index], true
	case map[int]interface{}:
		value, ok := actual[index]
		return value, ok
	case *node.Node:
		child, ok := actual.Item(index)
		if !ok {
			return nil, false
		}
		return child, true
	}
	value := shared.Deref(current)
	if value == nil {
		return nil, false
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array:
		if index >= rValue.Len() {
			return nil, false
		}
		return rValue.Index(index).Interface(), true
	case reflect.Map:
		keyType := rValue.Type().Key()
		switch keyType.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			item := rValue.MapIndex(reflect.ValueOf(index).Convert(keyType))
			if !item.IsValid() {
				return nil, false
			}
			return item.Interface(), true
		}
	}
	return nil, false
}
