package lookup

import (
	"github.com/viant/tagly/format/text"
)

//Options represents lookup key options
type Options struct {
	Alias      string
	Aliases    [][]interface{}
	Fallback   string
	CaseFormat text.CaseFormat
}

//Option represents a lookup key option
type Option func(o *Options)

type options []Option

//Apply sets options
func (o options) Apply(opts *Options) {
	for _, opt := range o {
		opt(opts)
	}
}

//WithAlias returns single alias option
func WithAlias(alias string) Option {
	return func(o *Options) {
		o.Alias = alias
	}
}

//WithAliases returns alias paths option
func WithAliases(aliases ...[]interface{}) Option {
	return func(o *Options) {
		if o.Aliases == nil {
			o.Aliases = make([][]interface{}, 0, len(aliases))
		}
		o.Aliases = append(o.Aliases, aliases...)
	}
}

//WithPath returns alias path option, each element has to be a string or an int
func WithPath(elements ...interface{}) Option {
	return func(o *Options) {
		o.Aliases = append(o.Aliases, elements)
	}
}

//WithFallback returns fallback name option, fallback is consulted after all aliases
func WithFallback(name string) Option {
	return func(o *Options) {
		o.Fallback = name
	}
}

//WithCaseFormat returns case format option used to match struct fields
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *Options) {
		o.CaseFormat = caseFormat
	}
}
