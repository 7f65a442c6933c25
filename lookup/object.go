package lookup

import (
	"github.com/viant/xunsafe"
	"reflect"
)

//Attributer represents a named attribute source, an attribute error is a lookup
//fault and aborts resolution
type Attributer interface {
	Attribute(name string) (interface{}, bool, error)
}

//objectStep resolves one path segment against an attribute bearing value; a key
//segment prefers item access whenever the value is mapping like, an index segment
//always uses item access
func objectStep(current interface{}, segment Segment) (interface{}, bool, error) {
	switch actual := segment.(type) {
	case *Name:
		return objectName(current, actual)
	case *Index:
		value, ok := mappingIndex(current, actual.value)
		return value, ok, nil
	}
	return nil, false, nil
}

//objectName returns value for the supplied name segment
func objectName(current interface{}, name *Name) (interface{}, bool, error) {
	if current == nil {
		return nil, false, nil
	}
	if isMappingLike(current) {
		value, ok := mappingKey(current, name.value)
		return value, ok, nil
	}
	if attributer, ok := current.(Attributer); ok {
		return attributer.Attribute(name.value)
	}
	value, ok := structField(current, name.handle)
	return value, ok, nil
}

//structField returns struct field value matched by the supplied handle
func structField(current interface{}, handle *handle) (interface{}, bool) {
	rValue := reflect.ValueOf(current)
	for rValue.Kind() == reflect.Ptr && rValue.Type().Elem().Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return nil, false
		}
		rValue = rValue.Elem()
	}
	rType := rValue.Type()
	owner := current
	if rType.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return nil, false
		}
		rType = rType.Elem()
		owner = rValue.Interface()
	}
	if rType.Kind() != reflect.Struct {
		return nil, false
	}
	xField := handle.field(rType)
	if xField == nil {
		return nil, false
	}
	ptr := xunsafe.AsPointer(owner)
	if ptr == nil {
		return nil, false
	}
	return xField.Value(ptr), true
}
