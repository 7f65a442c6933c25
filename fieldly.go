package fieldly

import (
	"context"
	_ "embed"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/fieldly/checker"
	"github.com/viant/fieldly/node"
	"github.com/viant/fieldly/schema"
	"github.com/viant/fieldly/service"
	"sync"
)

//go:embed Version
var Version string

//Service aggregates schema validators keyed by schema name
type Service struct {
	mux        sync.RWMutex
	validators map[string]*service.Service
	options    []service.Option
}

//Register compiles the supplied schema and registers its validator under
//the schema name, replacing a previous registration
func (s *Service) Register(ctx context.Context, aSchema *schema.Schema, opts ...service.Option) (*service.Service, error) {
	validator, err := service.New(ctx, aSchema, s.serviceOptions(opts)...)
	if err != nil {
		return nil, err
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	s.validators[aSchema.Name] = validator
	return validator, nil
}

//Load loads a schema from the supplied URL and registers its validator
func (s *Service) Load(ctx context.Context, URL string, opts ...service.Option) (*service.Service, error) {
	aSchema, err := schema.LoadFromURL(ctx, URL, afs.New())
	if err != nil {
		return nil, err
	}
	return s.Register(ctx, aSchema, opts...)
}

//RegisterType derives a schema from the supplied struct tags and registers
//its validator under the struct type name
func (s *Service) RegisterType(ctx context.Context, target interface{}, opts ...service.Option) (*service.Service, error) {
	aSchema, err := schema.Derive("", target)
	if err != nil {
		return nil, err
	}
	return s.Register(ctx, aSchema, opts...)
}

//Validator returns validator registered under the supplied name
func (s *Service) Validator(name string) (*service.Service, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	result, ok := s.validators[name]
	if !ok {
		return nil, fmt.Errorf("failed to lookup validator: %v", name)
	}
	return result, nil
}

//Validate validates the supplied source with the named validator
func (s *Service) Validate(ctx context.Context, name string, source *service.Source, opts ...service.Option) (*checker.Validation, error) {
	validator, err := s.Validator(name)
	if err != nil {
		return nil, err
	}
	return validator.Validate(ctx, source, opts...)
}

//ValidateObject validates fields resolved from a struct or Attributer host
func (s *Service) ValidateObject(ctx context.Context, name string, object interface{}, opts ...service.Option) (*checker.Validation, error) {
	validator, err := s.Validator(name)
	if err != nil {
		return nil, err
	}
	return validator.ValidateObject(ctx, object, opts...)
}

//ValidateMap validates fields resolved from a string keyed map
func (s *Service) ValidateMap(ctx context.Context, name string, mapping map[string]interface{}, opts ...service.Option) (*checker.Validation, error) {
	validator, err := s.Validator(name)
	if err != nil {
		return nil, err
	}
	return validator.ValidateMap(ctx, mapping, opts...)
}

//ValidateNode validates fields resolved from a parsed JSON tree
func (s *Service) ValidateNode(ctx context.Context, name string, tree *node.Node, opts ...service.Option) (*checker.Validation, error) {
	validator, err := s.Validator(name)
	if err != nil {
		return nil, err
	}
	return validator.ValidateNode(ctx, tree, opts...)
}

//ValidateJSON parses JSON input and validates it with the named validator
func (s *Service) ValidateJSON(ctx context.Context, name string, data []byte, opts ...service.Option) (*checker.Validation, error) {
	validator, err := s.Validator(name)
	if err != nil {
		return nil, err
	}
	return validator.ValidateJSON(ctx, data, opts...)
}

func (s *Service) serviceOptions(opts []service.Option) []service.Option {
	if len(s.options) == 0 {
		return opts
	}
	return append(append([]service.Option{}, s.options...), opts...)
}

//New creates a fieldly service, supplied options apply to every registered
//validator
func New(options ...service.Option) *Service {
	return &Service{validators: make(map[string]*service.Service), options: options}
}
