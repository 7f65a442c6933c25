package schema

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/fieldly/shared"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xreflect"
	"reflect"
	"strings"
	"time"
)

//Schema represents a set of fields resolved and checked together
type Schema struct {
	Name       string            `json:",omitempty"`
	CaseFormat string            `json:",omitempty"`
	Types      []*TypeDefinition `json:",omitempty"`
	Fields     []*Field          `json:",omitempty"`
	SourceURL  string            `json:",omitempty"`
	ModTime    time.Time         `json:",omitempty"`

	fs          afs.Service
	_types      *xreflect.Types
	_fields     map[string]*Field
	_caseFormat text.CaseFormat
	initialized bool
}

//Init compiles schema types and fields, it has to be called before use
func (s *Schema) Init(ctx context.Context, opts ...Option) error {
	if s.initialized {
		return nil
	}
	s.initialized = true
	aOptions := &Options{}
	options(opts).Apply(aOptions)
	if aOptions.types != nil {
		s._types = xreflect.NewTypes(xreflect.WithRegistry(aOptions.types))
	} else {
		s._types = xreflect.NewTypes()
	}
	if s.CaseFormat != "" {
		caseFormat := text.NewCaseFormat(s.CaseFormat)
		if !caseFormat.IsDefined() {
			return fmt.Errorf("unsupported case format: %v", s.CaseFormat)
		}
		s._caseFormat = caseFormat
	}
	for _, definition := range s.Types {
		if err := definition.Init(ctx, s._types); err != nil {
			return err
		}
	}
	s._fields = make(map[string]*Field, len(s.Fields))
	var errors []error
	for _, field := range s.Fields {
		if _, ok := s._fields[field.Name]; ok {
			errors = append(errors, fmt.Errorf("field %v is already defined", field.Name))
			continue
		}
		if err := field.Init(ctx, s); err != nil {
			errors = append(errors, err)
			continue
		}
		s._fields[field.Name] = field
	}
	return shared.CombineErrors("errors while initializing schema "+s.Name+": ", errors)
}

//Field returns a field with the supplied name
func (s *Schema) Field(name string) (*Field, error) {
	field, ok := s._fields[name]
	if !ok {
		return nil, fmt.Errorf("failed to lookup field: %v", name)
	}
	return field, nil
}

//TypeRegistry returns schema type registry
func (s *Schema) TypeRegistry() *xreflect.Types {
	return s._types
}

//LookupType returns a reflect type for the supplied data type name
func (s *Schema) LookupType(dataType string) (reflect.Type, error) {
	if rType := builtinType(dataType); rType != nil {
		return rType, nil
	}
	if s._types == nil {
		return nil, fmt.Errorf("failed to resolve type: %v", dataType)
	}
	return s._types.Lookup(dataType)
}

func (s *Schema) caseFormat() text.CaseFormat {
	return s._caseFormat
}

//LoadText loads text from the supplied URL, a relative URL resolves against schema source URL
func (s *Schema) LoadText(ctx context.Context, URL string) (string, error) {
	if url.Scheme(URL, "") == "" && s.SourceURL != "" {
		parent, _ := url.Split(s.SourceURL, file.Scheme)
		URL = url.Join(parent, URL)
	}
	fs := s.fs
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

//New creates a schema with supplied name and fields
func New(name string, fields ...*Field) *Schema {
	return &Schema{Name: name, Fields: fields}
}

func builtinType(dataType string) reflect.Type {
	switch strings.ToLower(strings.TrimSpace(dataType)) {
	case "int":
		return reflect.TypeOf(0)
	case "float", "float64":
		return reflect.TypeOf(0.0)
	case "bool", "boolean":
		return reflect.TypeOf(false)
	case "string":
		return reflect.TypeOf("")
	case "time", "date", "datetime":
		return reflect.TypeOf(time.Time{})
	case "uuid":
		return reflect.TypeOf(uuid.UUID{})
	}
	return nil
}
