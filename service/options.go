package service

import (
	"github.com/viant/fieldly/logger"
	"github.com/viant/gmetric"
	"github.com/viant/xreflect"
)

//Options represents service and validate options
type Options struct {
	location string
	target   interface{}
	logger   *logger.Adapter
	metrics  *gmetric.Service
	types    *xreflect.Types
	deep     bool
}

//Location returns violation location for the supplied field
func (o *Options) Location(field string) string {
	if o.location == "" {
		return field
	}
	return o.location + "." + field
}

//Option represents a service or validate option
type Option func(o *Options)

type options []Option

//Apply sets options
func (o options) Apply(opts *Options) {
	for _, opt := range o {
		opt(opts)
	}
}

//WithLocation returns option with violation location prefix
func WithLocation(location string) Option {
	return func(o *Options) {
		o.location = location
	}
}

//WithTarget returns option with a struct target, resolved values are bound
//into matching target fields
func WithTarget(target interface{}) Option {
	return func(o *Options) {
		o.target = target
	}
}

//WithLogger returns option with logging adapter
func WithLogger(adapter *logger.Adapter) Option {
	return func(o *Options) {
		o.logger = adapter
	}
}

//WithMetrics returns option with metric service, validations are counted
//with a per schema operation counter
func WithMetrics(metrics *gmetric.Service) Option {
	return func(o *Options) {
		o.metrics = metrics
	}
}

//WithTypes returns option with a parent type registry used by schema Init
func WithTypes(types *xreflect.Types) Option {
	return func(o *Options) {
		o.types = types
	}
}

//WithDeepValidation returns option running tag driven validation over the
//bound target after field checks
func WithDeepValidation() Option {
	return func(o *Options) {
		o.deep = true
	}
}
