package schema

import (
	"github.com/viant/xreflect"
)

//Options represents schema options
type Options struct {
	types *xreflect.Types
}

//Option represents a schema option
type Option func(o *Options)

type options []Option

//Apply sets options
func (o options) Apply(opts *Options) {
	for _, opt := range o {
		opt(opts)
	}
}

//WithTypes returns option with a parent type registry, schema types are
//registered in a child registry so shared registrations stay untouched
func WithTypes(types *xreflect.Types) Option {
	return func(o *Options) {
		o.types = types
	}
}
