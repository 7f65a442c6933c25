package cmd

import (
	"bytes"
	"context"
	"fmt"
	"github.com/francoispqt/gojay"
	"github.com/pkg/errors"
	"github.com/viant/afs/file"
	"github.com/viant/fieldly/checker"
	"github.com/viant/fieldly/schema"
	"github.com/viant/fieldly/service"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

//Validate represents validate command options
type Validate struct {
	SchemaURL string `short:"s" long:"schema" description:"schema location"`
	InputURL  string `short:"i" long:"input" description:"input location"`
	Format    string `short:"f" long:"format" description:"input format: json or yaml" default:"json"`
	DestURL   string `short:"o" long:"dest" description:"violation report destination"`
	Location  string `short:"l" long:"location" description:"violation location prefix"`
}

//Init checks and normalizes command options
func (v *Validate) Init() error {
	v.SchemaURL = ensureAbsPath(v.SchemaURL)
	v.InputURL = ensureAbsPath(v.InputURL)
	v.DestURL = ensureAbsPath(v.DestURL)
	if v.SchemaURL == "" {
		return fmt.Errorf("schema was empty")
	}
	if v.InputURL == "" {
		return fmt.Errorf("input was empty")
	}
	switch v.Format {
	case "", formatJSON, formatYAML:
	default:
		return fmt.Errorf("unsupported format: %v", v.Format)
	}
	return nil
}

//Run validates input against the schema and writes the violation report,
//failed validation returns an error after the report is written
func (v *Validate) Run(ctx context.Context) error {
	aSchema, err := schema.NewFromURL(ctx, v.SchemaURL)
	if err != nil {
		return err
	}
	validator, err := service.New(ctx, aSchema)
	if err != nil {
		return err
	}
	data, err := fs.DownloadWithURL(ctx, v.InputURL)
	if err != nil {
		return errors.Wrapf(err, "failed to load input: %v", v.InputURL)
	}
	var opts []service.Option
	if v.Location != "" {
		opts = append(opts, service.WithLocation(v.Location))
	}
	validation, err := v.validate(ctx, validator, data, opts)
	if err != nil {
		return err
	}
	if err = v.report(ctx, validation); err != nil {
		return err
	}
	if validation.Failed {
		return fmt.Errorf("validation failed with %v violation(s)", len(validation.Violations))
	}
	return nil
}

func (v *Validate) validate(ctx context.Context, validator *service.Service, data []byte, opts []service.Option) (*checker.Validation, error) {
	if v.Format == formatYAML {
		aMap := map[string]interface{}{}
		if err := yaml.Unmarshal(data, &aMap); err != nil {
			return nil, errors.Wrapf(err, "failed to parse input: %v", v.InputURL)
		}
		return validator.ValidateMap(ctx, aMap, opts...)
	}
	return validator.ValidateJSON(ctx, data, opts...)
}

func (v *Validate) report(ctx context.Context, validation *checker.Validation) error {
	output, err := gojay.MarshalJSONObject(validation)
	if err != nil {
		return err
	}
	if v.DestURL == "" {
		fmt.Println(string(output))
		return nil
	}
	return fs.Upload(ctx, v.DestURL, file.DefaultFileOsMode, bytes.NewReader(output))
}
