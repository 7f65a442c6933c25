package logger

import (
	"time"
)

//TimeLogger logs validations slower than configured threshold
type TimeLogger struct {
	threshold     time.Duration
	defaultLogger defaultLogger
}

func NewTimeLogger(threshold time.Duration) *TimeLogger {
	return &TimeLogger{
		threshold: threshold,
	}
}

func (t *TimeLogger) FieldResolution() FieldResolution {
	return nil
}

func (t *TimeLogger) CheckFailure() CheckFailure {
	return nil
}

func (t *TimeLogger) Log() Log {
	return nil
}

func (t *TimeLogger) ValidateTime() ValidateTime {
	return func(schemaName string, start *time.Time, end *time.Time, err error) {
		if end.Sub(*start) < t.threshold {
			return
		}
		t.defaultLogger.logValidateTime(schemaName, start, end, err)
	}
}
