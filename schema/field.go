package schema

import (
	"context"
	"fmt"
	"github.com/viant/fieldly/checker"
	"github.com/viant/fieldly/converter"
	"github.com/viant/fieldly/lookup"
	"github.com/viant/fieldly/shared"
	"github.com/viant/tagly/format/text"
	"reflect"
	"strings"
)

//Field represents a schema field with its lookup and check configuration; Alias
//declares a single source name, Aliases declare one or more source paths using
//the lookup expression syntax, Fallback additionally matches the declared name
//after all aliases
type Field struct {
	Name         string           `json:",omitempty"`
	Alias        string           `json:",omitempty"`
	Aliases      []string         `json:",omitempty"`
	Fallback     bool             `json:",omitempty"`
	DataType     string           `json:",omitempty"`
	Format       string           `json:",omitempty"`
	Required     bool             `json:",omitempty"`
	Default      interface{}      `json:",omitempty"`
	Checks       []*checker.Check `json:",omitempty"`
	ErrorMessage string           `json:",omitempty"`
	Tag          string           `json:",omitempty"`

	_key     lookup.Key
	_checks  []*checker.Compiled
	_type    reflect.Type
	_default interface{}
	_message *messageEvaluator
}

//Init compiles field lookup key, checks, default value and message template
func (f *Field) Init(ctx context.Context, schema *Schema) error {
	if f.Name == "" {
		return fmt.Errorf("field name was empty")
	}
	if err := f.initType(schema); err != nil {
		return err
	}
	key, err := f.compileKey(schema.caseFormat())
	if err != nil {
		return fmt.Errorf("failed to compile field %v lookup: %w", f.Name, err)
	}
	f._key = key
	f._checks = make([]*checker.Compiled, 0, len(f.Checks))
	for _, check := range f.Checks {
		check.Format = shared.FirstNotEmpty(check.Format, f.Format)
		compiled, err := checker.Compile(check)
		if err != nil {
			return fmt.Errorf("failed to compile field %v: %w", f.Name, err)
		}
		f._checks = append(f._checks, compiled)
	}
	if err := f.initDefault(); err != nil {
		return err
	}
	if err := f.initMessage(ctx, schema); err != nil {
		return err
	}
	return nil
}

func (f *Field) initMessage(ctx context.Context, schema *Schema) error {
	if f.ErrorMessage == "" {
		return nil
	}
	template := f.ErrorMessage
	if strings.HasPrefix(template, "uri ") {
		loaded, err := schema.LoadText(ctx, strings.TrimSpace(template[4:]))
		if err != nil {
			return fmt.Errorf("failed to load field %v message: %w", f.Name, err)
		}
		template = loaded
	}
	message, err := newMessageEvaluator(template)
	if err != nil {
		return fmt.Errorf("failed to compile field %v message: %w", f.Name, err)
	}
	f._message = message
	return nil
}

func (f *Field) initType(schema *Schema) error {
	if f.DataType == "" {
		return nil
	}
	rType, err := schema.LookupType(f.DataType)
	if err != nil {
		return fmt.Errorf("failed to resolve field %v type: %w", f.Name, err)
	}
	f._type = rType
	return nil
}

func (f *Field) initDefault() error {
	if f.Default == nil {
		return nil
	}
	f._default = f.Default
	if f._type == nil || reflect.TypeOf(f.Default) == f._type {
		return nil
	}
	value, _, err := converter.Convert(converter.AsString(f.Default), f._type, f.Format)
	if err != nil {
		return fmt.Errorf("failed to convert field %v default value: %w", f.Name, err)
	}
	f._default = value
	return nil
}

func (f *Field) compileKey(caseFormat text.CaseFormat) (lookup.Key, error) {
	var opts []lookup.Option
	if caseFormat != "" {
		opts = append(opts, lookup.WithCaseFormat(caseFormat))
	}
	if f.Alias != "" {
		opts = append(opts, lookup.WithAlias(f.Alias))
	}
	if len(f.Aliases) > 0 {
		opts = append(opts, lookup.WithAliases())
	}
	if f.Fallback || (f.Alias == "" && len(f.Aliases) == 0) {
		opts = append(opts, lookup.WithFallback(f.Name))
	}
	if len(f.Aliases) == 0 {
		return lookup.New(opts...)
	}
	return lookup.Parse(strings.Join(f.Aliases, " | "), opts...)
}

//Key returns compiled lookup key
func (f *Field) Key() lookup.Key {
	return f._key
}

//Type returns field data type or nil when not declared
func (f *Field) Type() reflect.Type {
	return f._type
}

//Checkers returns compiled checks
func (f *Field) Checkers() []*checker.Compiled {
	return f._checks
}

//DefaultValue returns default value converted to the field type
func (f *Field) DefaultValue() interface{} {
	return f._default
}

//Message expands the custom violation message for supplied value and check,
//the second result is false when no template was configured
func (f *Field) Message(value interface{}, check string) (string, bool) {
	if f._message == nil {
		return "", false
	}
	message, err := f._message.Evaluate(f.Name, converter.AsString(value), check)
	if err != nil {
		return "", false
	}
	return message, true
}
