package shared

import "reflect"

//Elem returns underlying non pointer, non slice type
func Elem(rType reflect.Type) reflect.Type {
	switch rType.Kind() {
	case reflect.Ptr, reflect.Slice:
		return Elem(rType.Elem())
	}
	return rType
}

//Deref follows pointer and interface values until a concrete value is reached,
//returns nil for nil pointers
func Deref(value interface{}) interface{} {
	if value == nil {
		return nil
	}
	rValue := reflect.ValueOf(value)
	for rValue.Kind() == reflect.Ptr || rValue.Kind() == reflect.Interface {
		if rValue.IsNil() {
			return nil
		}
		rValue = rValue.Elem()
	}
	return rValue.Interface()
}
