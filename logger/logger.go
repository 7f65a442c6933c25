package logger

import (
	"time"
)

type Log func(message string, args ...interface{})
type FieldResolution func(field, alias string, found bool, value interface{})
type CheckFailure func(field, check string, value interface{}, message string)
type ValidateTime func(schemaName string, start *time.Time, end *time.Time, err error)

type Logger interface {
	FieldResolution() FieldResolution
	CheckFailure() CheckFailure
	ValidateTime() ValidateTime
	Log() Log
}
