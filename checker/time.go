package checker

import (
	"fmt"
	"github.com/viant/fieldly/converter"
	"time"
)

type timeFactory struct{}

func (f *timeFactory) Name() string {
	return "time"
}

func (f *timeFactory) New(check *Check) (Checker, error) {
	layout := check.Format
	if layout == "" {
		layout = time.RFC3339
	}
	return &timeChecker{check: check, layout: layout}, nil
}

type timeChecker struct {
	check  *Check
	layout string
}

func (c *timeChecker) Check(value interface{}) error {
	switch value.(type) {
	case time.Time, *time.Time:
		return nil
	}
	if c.check.Strict {
		return fmt.Errorf("expected time, but had %T", value)
	}
	if _, err := converter.AsTime(value, c.layout); err != nil {
		return fmt.Errorf("expected time in %v format, but had %v(%T)", c.layout, value, value)
	}
	return nil
}
