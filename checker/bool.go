package checker

import (
	"fmt"
	"github.com/viant/fieldly/converter"
)

type boolFactory struct{}

func (f *boolFactory) Name() string {
	return "bool"
}

func (f *boolFactory) New(check *Check) (Checker, error) {
	return &boolChecker{check: check}, nil
}

type boolChecker struct {
	check *Check
}

func (c *boolChecker) Check(value interface{}) error {
	if _, ok := value.(bool); ok {
		return nil
	}
	if c.check.Strict {
		return fmt.Errorf("expected bool, but had %T", value)
	}
	if _, err := converter.AsBool(value); err != nil {
		return fmt.Errorf("expected bool, but had %v(%T)", value, value)
	}
	return nil
}
