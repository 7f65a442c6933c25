package logger

import (
	"os"
	"time"
)

//Adapter dispatches logging events to optional handlers
type Adapter struct {
	validateTime    ValidateTime
	fieldResolution FieldResolution
	checkFailure    CheckFailure
	log             Log
}

func (l *Adapter) FieldResolution(field, alias string, found bool, value interface{}) {
	if l.fieldResolution == nil {
		return
	}
	l.fieldResolution(field, alias, found, value)
}

func (l *Adapter) CheckFailure(field, check string, value interface{}, message string) {
	if l.checkFailure == nil {
		return
	}
	l.checkFailure(field, check, value, message)
}

func (l *Adapter) ValidateTime(schemaName string, start, end *time.Time, err error) {
	if l.validateTime == nil {
		return
	}
	l.validateTime(schemaName, start, end, err)
}

func (l *Adapter) Log(message string, args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log(message, args...)
}

func NewLogger(logger Logger) *Adapter {
	if logger == nil {
		return &Adapter{}
	}
	return &Adapter{
		validateTime:    logger.ValidateTime(),
		fieldResolution: logger.FieldResolution(),
		checkFailure:    logger.CheckFailure(),
		log:             logger.Log(),
	}
}

func Default() *Adapter {
	if os.Getenv("FIELDLY_DEBUG") == "" {
		return NewLogger(nil)
	}
	return NewLogger(&defaultLogger{})
}
