package service

import (
	"context"
	"fmt"
	"github.com/viant/fieldly/checker"
	"github.com/viant/fieldly/logger"
	"github.com/viant/fieldly/node"
	"github.com/viant/fieldly/schema"
	"github.com/viant/govalidator"
	"github.com/viant/toolbox"
	"reflect"
	"time"
)

//Service validates source values against a compiled schema
type Service struct {
	schema    *schema.Schema
	counter   *logger.CounterAdapter
	logger    *logger.Adapter
	validator *govalidator.Service
}

//Schema returns service schema
func (s *Service) Schema() *schema.Schema {
	return s.schema
}

//Validate resolves every schema field against the supplied source, applies
//defaults, requiredness and checks, and when a target was supplied binds
//resolved values into it; a representation fault aborts with an error,
//an absent field never does
func (s *Service) Validate(ctx context.Context, source *Source, opts ...Option) (*checker.Validation, error) {
	aSession, err := s.newSession(opts)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	onDone := s.counter.Begin(start)
	s.counter.IncrementValue(Pending)
	defer s.counter.DecrementValue(Pending)
	err = s.validate(ctx, source, aSession)
	end := time.Now()
	onDone(end)
	if err != nil {
		s.counter.IncrementValue(Error)
	} else {
		s.counter.IncrementValue(Success)
	}
	aSession.logger.ValidateTime(s.schema.Name, &start, &end, err)
	if err != nil {
		return nil, err
	}
	return aSession.validation, nil
}

//ValidateObject validates fields resolved from a struct or Attributer host
func (s *Service) ValidateObject(ctx context.Context, object interface{}, opts ...Option) (*checker.Validation, error) {
	return s.Validate(ctx, NewObjectSource(object), opts...)
}

//ValidateMap validates fields resolved from a string keyed map
func (s *Service) ValidateMap(ctx context.Context, mapping map[string]interface{}, opts ...Option) (*checker.Validation, error) {
	return s.Validate(ctx, NewMapSource(mapping), opts...)
}

//ValidateNode validates fields resolved from a parsed JSON tree
func (s *Service) ValidateNode(ctx context.Context, tree *node.Node, opts ...Option) (*checker.Validation, error) {
	return s.Validate(ctx, NewNodeSource(tree), opts...)
}

//ValidateJSON parses JSON input and validates the resulting tree
func (s *Service) ValidateJSON(ctx context.Context, data []byte, opts ...Option) (*checker.Validation, error) {
	source, err := NewJSONSource(data)
	if err != nil {
		return nil, err
	}
	return s.Validate(ctx, source, opts...)
}

func (s *Service) validate(ctx context.Context, source *Source, aSession *session) error {
	for _, field := range s.schema.Fields {
		if err := s.validateField(source, field, aSession); err != nil {
			return err
		}
	}
	if aSession.options.deep && aSession.options.target != nil {
		return s.validateDeep(ctx, aSession)
	}
	return nil
}

func (s *Service) validateField(source *Source, field *schema.Field, aSession *session) error {
	matched, value, found, err := source.Lookup(field.Key())
	if err != nil {
		return fmt.Errorf("failed to resolve field %v: %w", field.Name, err)
	}
	aSession.logger.FieldResolution(field.Name, matched, found, value)
	if !found {
		if field.DefaultValue() != nil {
			return s.bind(field, field.DefaultValue(), aSession)
		}
		if field.Required {
			s.addViolation(field, nil, "required", "field is required", aSession)
		}
		return nil
	}
	if value == nil {
		return nil
	}
	failed := false
	for _, check := range field.Checkers() {
		if err := check.Validate(value); err != nil {
			s.addViolation(field, value, check.Name, err.Error(), aSession)
			failed = true
		}
	}
	if failed {
		return nil
	}
	return s.bind(field, value, aSession)
}

func (s *Service) addViolation(field *schema.Field, value interface{}, check, message string, aSession *session) {
	if custom, ok := field.Message(value, check); ok {
		message = custom
	}
	aSession.logger.CheckFailure(field.Name, check, value, message)
	aSession.validation.Append(aSession.options.Location(field.Name), field.Name, value, check, message)
}

func (s *Service) bind(field *schema.Field, value interface{}, aSession *session) error {
	state := aSession.state
	if state == nil || value == nil {
		return nil
	}
	selector := state.Type().Lookup(field.Name)
	if selector == nil {
		return nil
	}
	if destType := selector.Type(); reflect.TypeOf(value) != destType {
		dest := reflect.New(destType)
		if err := toolbox.DefaultConverter.AssignConverted(dest.Interface(), value); err != nil {
			s.addViolation(field, value, "type", err.Error(), aSession)
			return nil
		}
		value = dest.Elem().Interface()
	}
	return selector.SetValue(state.Pointer(), value)
}

//New creates a validation service with the supplied schema, initializing it
//when needed
func New(ctx context.Context, aSchema *schema.Schema, opts ...Option) (*Service, error) {
	aOptions := &Options{}
	options(opts).Apply(aOptions)
	var schemaOptions []schema.Option
	if aOptions.types != nil {
		schemaOptions = append(schemaOptions, schema.WithTypes(aOptions.types))
	}
	if err := aSchema.Init(ctx, schemaOptions...); err != nil {
		return nil, err
	}
	result := &Service{
		schema:    aSchema,
		validator: govalidator.New(),
		counter:   newCounter(aOptions.metrics, aSchema.Name),
		logger:    aOptions.logger,
	}
	if result.logger == nil {
		result.logger = logger.Default()
	}
	return result, nil
}
