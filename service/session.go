package service

import (
	"fmt"
	"github.com/viant/fieldly/checker"
	"github.com/viant/fieldly/logger"
	"github.com/viant/structology"
	"reflect"
)

//session carries per validation state
type session struct {
	options    *Options
	state      *structology.State
	validation *checker.Validation
	logger     *logger.Adapter
}

func (s *Service) newSession(opts []Option) (*session, error) {
	aOptions := &Options{}
	options(opts).Apply(aOptions)
	result := &session{options: aOptions, validation: checker.NewValidation(), logger: s.logger}
	if aOptions.logger != nil {
		result.logger = aOptions.logger
	}
	if aOptions.target != nil {
		if reflect.TypeOf(aOptions.target).Kind() != reflect.Ptr {
			return nil, fmt.Errorf("validation target has to be a pointer, had: %T", aOptions.target)
		}
		stateType := structology.NewStateType(reflect.TypeOf(aOptions.target))
		result.state = stateType.WithValue(aOptions.target)
	}
	return result, nil
}
