package logger

import (
	"fmt"
	"time"
)

type defaultLogger struct {
}

func (d *defaultLogger) FieldResolution() FieldResolution {
	return func(field, alias string, found bool, value interface{}) {
		fmt.Printf("[LOGGER] resolved field: %v, alias: %v, found: %v, value: (%T):%+v \n", field, alias, found, value, value)
	}
}

func (d *defaultLogger) CheckFailure() CheckFailure {
	return func(field, check string, value interface{}, message string) {
		fmt.Printf("[LOGGER] check %v failed on field: %v, value: (%T):%+v, message: %v \n", check, field, value, value, message)
	}
}

func (d *defaultLogger) ValidateTime() ValidateTime {
	return func(schemaName string, start *time.Time, end *time.Time, err error) {
		d.logValidateTime(schemaName, start, end, err)
	}
}

func (d *defaultLogger) Log() Log {
	return func(message string, args ...interface{}) {
		fmt.Printf("[LOGGER] "+message+" \n", args...)
	}
}

func (d *defaultLogger) logValidateTime(schemaName string, start *time.Time, end *time.Time, err error) {
	fmt.Printf("[LOGGER] validation with %v took %v, err: %v \n", schemaName, end.Sub(*start), err)
}
