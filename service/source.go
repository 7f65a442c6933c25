package service

import (
	"fmt"
	"github.com/viant/fieldly/lookup"
	"github.com/viant/fieldly/node"
)

//SourceKind represents the representation a source value carries
type SourceKind string

const (
	//SourceKindObject resolves fields against structs and Attributer hosts
	SourceKindObject SourceKind = "object"
	//SourceKindMapping resolves fields against string keyed maps
	SourceKindMapping SourceKind = "mapping"
	//SourceKindTree resolves fields against a parsed JSON tree
	SourceKindTree SourceKind = "tree"
)

//Source represents an input value with an explicit representation kind
type Source struct {
	kind    SourceKind
	object  interface{}
	mapping map[string]interface{}
	tree    *node.Node
}

//Kind returns source kind
func (s *Source) Kind() SourceKind {
	return s.kind
}

//Lookup resolves a value with the key operation matching source kind, tree
//values are unwrapped to native Go values
func (s *Source) Lookup(key lookup.Key) (string, interface{}, bool, error) {
	switch s.kind {
	case SourceKindObject:
		return key.Object(s.object)
	case SourceKindMapping:
		return key.Mapping(s.mapping)
	case SourceKindTree:
		matched, value, found, err := key.Node(s.tree)
		if err != nil || !found {
			return matched, nil, found, err
		}
		return matched, value.Interface(), true, nil
	}
	return "", nil, false, fmt.Errorf("unsupported source kind: %v", s.kind)
}

//NewObjectSource creates an object source
func NewObjectSource(object interface{}) *Source {
	return &Source{kind: SourceKindObject, object: object}
}

//NewMapSource creates a mapping source
func NewMapSource(mapping map[string]interface{}) *Source {
	return &Source{kind: SourceKindMapping, mapping: mapping}
}

//NewNodeSource creates a tree source
func NewNodeSource(tree *node.Node) *Source {
	return &Source{kind: SourceKindTree, tree: tree}
}

//NewJSONSource creates a tree source from JSON input
func NewJSONSource(data []byte) (*Source, error) {
	tree, err := node.Parse(data)
	if err != nil {
		return nil, err
	}
	return NewNodeSource(tree), nil
}
