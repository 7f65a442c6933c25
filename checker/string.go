package checker

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/viant/fieldly/converter"
	"regexp"
	"strings"
	"unicode/utf8"
)

type stringFactory struct{}

func (f *stringFactory) Name() string {
	return "string"
}

func (f *stringFactory) New(check *Check) (Checker, error) {
	result := &stringChecker{check: check}
	if check.Pattern != "" {
		pattern, err := regexp.Compile(check.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid pattern: %v", check.Pattern)
		}
		result.pattern = pattern
	}
	switch check.Transform {
	case "", TransformStrip, TransformLower, TransformUpper:
	default:
		return nil, errors.Errorf("unsupported transform: %v", check.Transform)
	}
	return result, nil
}

type stringChecker struct {
	check   *Check
	pattern *regexp.Regexp
}

func (c *stringChecker) Check(value interface{}) error {
	text, ok := value.(string)
	if !ok {
		if c.check.Strict {
			return fmt.Errorf("expected string, but had %T", value)
		}
		switch value.(type) {
		case []byte, bool,
			int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			text = converter.AsString(value)
		default:
			return fmt.Errorf("expected string, but had %T", value)
		}
	}
	switch c.check.Transform {
	case TransformStrip:
		text = strings.TrimSpace(text)
	case TransformLower:
		text = strings.ToLower(text)
	case TransformUpper:
		text = strings.ToUpper(text)
	}
	length := utf8.RuneCountInString(text)
	if c.check.MinLength != nil && length < *c.check.MinLength {
		return fmt.Errorf("value is too short, expected at least %v characters", *c.check.MinLength)
	}
	if c.check.MaxLength != nil && length > *c.check.MaxLength {
		return fmt.Errorf("value is too long, expected at most %v characters", *c.check.MaxLength)
	}
	if c.pattern != nil && !c.pattern.MatchString(text) {
		return fmt.Errorf("value does not match pattern: %v", c.check.Pattern)
	}
	return nil
}
