package cmd

import (
	"context"
	"fmt"
)

//Options represents fieldly command options
type Options struct {
	Validate *Validate `command:"validate" description:"validates input against a schema"`
	Version  bool      `short:"v" long:"version" description:"fieldly version"`
}

//Init initializes the matched command
func (o *Options) Init(ctx context.Context) error {
	if o.Validate != nil {
		return o.Validate.Init()
	}
	return nil
}

//Run executes the matched command
func (o *Options) Run(ctx context.Context) error {
	if o.Validate != nil {
		return o.Validate.Run(ctx)
	}
	return fmt.Errorf("unsupported command, supported: validate")
}

//New creates options for the supplied arguments
func New(args []string) *Options {
	ret := &Options{}
	if len(args) == 0 {
		return ret
	}
	switch args[0] {
	case "validate":
		ret.Validate = &Validate{}
	}
	return ret
}
