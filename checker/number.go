package checker

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/viant/fieldly/converter"
	"math"
)

type intFactory struct{}

func (f *intFactory) Name() string {
	return "int"
}

func (f *intFactory) New(check *Check) (Checker, error) {
	if check.MultipleOf != nil && *check.MultipleOf == 0 {
		return nil, errors.New("multipleOf has to be non zero")
	}
	return &intChecker{check: check}, nil
}

type intChecker struct {
	check *Check
}

func (c *intChecker) Check(value interface{}) error {
	if c.check.Strict && !isIntegerTyped(value) {
		return fmt.Errorf("expected int, but had %T", value)
	}
	result, err := converter.AsInt(value)
	if err != nil {
		return fmt.Errorf("expected int, but had %v(%T)", value, value)
	}
	return checkRange(float64(result), c.check)
}

type floatFactory struct{}

func (f *floatFactory) Name() string {
	return "float"
}

func (f *floatFactory) New(check *Check) (Checker, error) {
	if check.MultipleOf != nil && *check.MultipleOf == 0 {
		return nil, errors.New("multipleOf has to be non zero")
	}
	return &floatChecker{check: check}, nil
}

type floatChecker struct {
	check *Check
}

func (c *floatChecker) Check(value interface{}) error {
	if c.check.Strict {
		switch value.(type) {
		case float32, float64:
		default:
			return fmt.Errorf("expected float, but had %T", value)
		}
	}
	result, err := converter.AsFloat(value)
	if err != nil {
		return fmt.Errorf("expected float, but had %v(%T)", value, value)
	}
	return checkRange(result, c.check)
}

func checkRange(value float64, check *Check) error {
	if check.Min != nil && value < *check.Min {
		return fmt.Errorf("value %v is lower than %v", value, *check.Min)
	}
	if check.Max != nil && value > *check.Max {
		return fmt.Errorf("value %v is greater than %v", value, *check.Max)
	}
	if check.MultipleOf != nil && math.Mod(value, *check.MultipleOf) != 0 {
		return fmt.Errorf("value %v is not a multiple of %v", value, *check.MultipleOf)
	}
	return nil
}

func isIntegerTyped(value interface{}) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}
