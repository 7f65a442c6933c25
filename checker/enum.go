package checker

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/viant/fieldly/converter"
	"strings"
)

type enumFactory struct{}

func (f *enumFactory) Name() string {
	return "enum"
}

func (f *enumFactory) New(check *Check) (Checker, error) {
	if len(check.Values) == 0 {
		return nil, errors.New("enum check requires at least one value")
	}
	allowed := make(map[string]bool, len(check.Values))
	for _, candidate := range check.Values {
		allowed[converter.AsString(candidate)] = true
	}
	return &enumChecker{check: check, allowed: allowed}, nil
}

//enumChecker compares text normalization of a value against allowed values
type enumChecker struct {
	check   *Check
	allowed map[string]bool
}

func (c *enumChecker) Check(value interface{}) error {
	if c.allowed[converter.AsString(value)] {
		return nil
	}
	candidates := make([]string, 0, len(c.check.Values))
	for _, candidate := range c.check.Values {
		candidates = append(candidates, converter.AsString(candidate))
	}
	return fmt.Errorf("value %v is not one of: %v", value, strings.Join(candidates, ", "))
}
