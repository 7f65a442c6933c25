package schema

import (
	"context"
	"fmt"
	"github.com/viant/xreflect"
)

//TypeDefinition represents a named type registered with the schema type registry
type TypeDefinition struct {
	Name     string `json:",omitempty"`
	Package  string `json:",omitempty"`
	DataType string `json:",omitempty"`
}

//Init registers definition type with the supplied registry
func (d *TypeDefinition) Init(ctx context.Context, types *xreflect.Types) error {
	if d.Name == "" {
		return fmt.Errorf("type definition name was empty")
	}
	if d.DataType == "" {
		return fmt.Errorf("type definition %v dataType was empty", d.Name)
	}
	if _, err := types.Lookup(d.Name); err == nil {
		return fmt.Errorf("%v type is already registered", d.Name)
	}
	return types.Register(d.Name, xreflect.WithTypeDefinition(d.DataType), xreflect.WithPackage(d.Package))
}
