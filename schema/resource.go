package schema

import (
	"context"
	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/fieldly/shared"
	"github.com/viant/toolbox"
	"path"
)

//LoadFromURL loads a schema definition from a .yaml or .json document
func LoadFromURL(ctx context.Context, URL string, fs afs.Service) (*Schema, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load schema: %v", URL)
	}
	object, err := fs.Object(ctx, URL)
	if err != nil {
		return nil, err
	}
	aMap := map[string]interface{}{}
	if err := shared.UnmarshalWithExt(data, &aMap, path.Ext(URL)); err != nil {
		return nil, errors.Wrapf(err, "failed to parse schema: %v", URL)
	}
	schema := &Schema{}
	if err := toolbox.DefaultConverter.AssignConverted(schema, aMap); err != nil {
		return nil, errors.Wrapf(err, "failed to convert schema: %v", URL)
	}
	schema.fs = fs
	schema.SourceURL = URL
	schema.ModTime = object.ModTime()
	return schema, nil
}

//NewFromURL loads and initializes a schema from the supplied URL
func NewFromURL(ctx context.Context, URL string, opts ...Option) (*Schema, error) {
	schema, err := LoadFromURL(ctx, URL, afs.New())
	if err != nil {
		return nil, err
	}
	if err = schema.Init(ctx, opts...); err != nil {
		return nil, err
	}
	return schema, nil
}
