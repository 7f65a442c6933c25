package lookup

import (
	"github.com/viant/fieldly/node"
)

//nodeStep resolves one path segment against a JSON tree node; a key segment
//requires an object node, an index segment requires an array node, any other
//node kind yields absence
func nodeStep(current *node.Node, segment Segment) (*node.Node, bool) {
	if current == nil {
		return nil, false
	}
	switch actual := segment.(type) {
	case *Name:
		return current.Value(actual.value)
	case *Index:
		return current.Item(actual.value)
	}
	return nil, false
}
