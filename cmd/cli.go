package cmd

import (
	"context"
	"fmt"
	"github.com/jessevdk/go-flags"
)

//RunApp parses arguments and runs the matched command
func RunApp(version string, args []string) error {
	options, err := buildOptions(args)
	if err != nil || options == nil {
		return err
	}
	if options.Version {
		fmt.Printf("Fieldly: version: %v\n", version)
		return nil
	}
	ctx := context.Background()
	if err = options.Init(ctx); err != nil {
		return err
	}
	return options.Run(ctx)
}

type appOptions struct {
	Version bool `short:"v" long:"version" description:"fieldly version"`
}

func buildOptions(args []string) (*Options, error) {
	options := New(args)
	if options.Validate == nil {
		flat := &appOptions{}
		if _, err := flags.ParseArgs(flat, args); err != nil {
			if isHelpOption(args) {
				return nil, nil
			}
			return nil, err
		}
		return &Options{Version: flat.Version}, nil
	}
	if _, err := flags.ParseArgs(options, args); err != nil {
		if isHelpOption(args) {
			return nil, nil
		}
		return nil, err
	}
	return options, nil
}

func isHelpOption(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}
