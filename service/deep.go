package service

import (
	"context"
	"github.com/viant/fieldly/checker"
)

//validateDeep runs tag driven validation over the bound target and merges
//resulting violations
func (s *Service) validateDeep(ctx context.Context, aSession *session) error {
	ret, err := s.validator.Validate(ctx, aSession.options.target)
	if err != nil {
		return err
	}
	if ret == nil || len(ret.Violations) == 0 {
		return nil
	}
	for _, violation := range ret.Violations {
		aSession.validation.AddViolation(&checker.Violation{
			Location: violation.Location,
			Field:    violation.Field,
			Value:    violation.Value,
			Check:    violation.Check,
			Message:  violation.Message,
		})
	}
	return nil
}
