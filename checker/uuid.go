package checker

import (
	"fmt"
	"github.com/google/uuid"
)

type uuidFactory struct{}

func (f *uuidFactory) Name() string {
	return "uuid"
}

func (f *uuidFactory) New(check *Check) (Checker, error) {
	return &uuidChecker{check: check}, nil
}

type uuidChecker struct {
	check *Check
}

func (c *uuidChecker) Check(value interface{}) error {
	switch actual := value.(type) {
	case uuid.UUID:
		return nil
	case string:
		if c.check.Strict {
			return fmt.Errorf("expected UUID, but had %T", value)
		}
		if _, err := uuid.Parse(actual); err != nil {
			return fmt.Errorf("invalid UUID: %v", actual)
		}
		return nil
	case []byte:
		if c.check.Strict {
			return fmt.Errorf("expected UUID, but had %T", value)
		}
		if _, err := uuid.ParseBytes(actual); err != nil {
			return fmt.Errorf("invalid UUID: %s", actual)
		}
		return nil
	}
	return fmt.Errorf("expected UUID, but had %T", value)
}
