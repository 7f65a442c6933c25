package lookup

import (
	"github.com/viant/tagly/format/text"
	"strconv"
)

//SegmentKind represents a path segment kind
type SegmentKind int

const (
	//SegmentKindName represents a key or attribute segment
	SegmentKindName = SegmentKind(iota + 1)
	//SegmentKindIndex represents a sequence index segment
	SegmentKindIndex
)

//Segment represents a single step of a lookup path
type Segment interface {
	Kind() SegmentKind
	String() string
	segment()
}

//Name represents a key or attribute path segment
type Name struct {
	value  string
	handle *handle
}

//Kind returns segment kind
func (n *Name) Kind() SegmentKind {
	return SegmentKindName
}

//Value returns segment name
func (n *Name) Value() string {
	return n.value
}

//String returns segment text form
func (n *Name) String() string {
	return n.value
}

func (n *Name) segment() {}

//Index represents a sequence index path segment
type Index struct {
	value int
}

//Kind returns segment kind
func (i *Index) Kind() SegmentKind {
	return SegmentKindIndex
}

//Value returns segment index
func (i *Index) Value() int {
	return i.value
}

//String returns segment text form
func (i *Index) String() string {
	return "[" + strconv.Itoa(i.value) + "]"
}

func (i *Index) segment() {}

//NewName creates a name segment
func NewName(value string, caseFormat text.CaseFormat) *Name {
	return &Name{value: value, handle: newHandle(value, caseFormat)}
}

//NewIndex creates an index segment
func NewIndex(value int) (*Index, error) {
	if value < 0 {
		return nil, NewConfigError("path index must be non negative, got %v", value)
	}
	return &Index{value: value}, nil
}

//NewSegment creates a path segment for the supplied element; the leading element has to be a name
func NewSegment(element interface{}, position int, caseFormat text.CaseFormat) (Segment, error) {
	switch actual := element.(type) {
	case Segment:
		if position == 0 && actual.Kind() != SegmentKindName {
			return nil, NewConfigError("first item in a path must be a string, got %v", actual)
		}
		return actual, nil
	case string:
		return NewName(actual, caseFormat), nil
	case int:
		return newIndexAt(actual, position)
	case int8:
		return newIndexAt(int(actual), position)
	case int16:
		return newIndexAt(int(actual), position)
	case int32:
		return newIndexAt(int(actual), position)
	case int64:
		return newIndexAt(int(actual), position)
	case uint:
		return newIndexAt(int(actual), position)
	case uint8:
		return newIndexAt(int(actual), position)
	case uint16:
		return newIndexAt(int(actual), position)
	case uint32:
		return newIndexAt(int(actual), position)
	case uint64:
		return newIndexAt(int(actual), position)
	case float64:
		if actual != float64(int(actual)) {
			return nil, NewConfigError("path items must be string or int, got %v", actual)
		}
		return newIndexAt(int(actual), position)
	default:
		return nil, NewConfigError("path items must be string or int, got %T", element)
	}
}

func newIndexAt(value int, position int) (*Index, error) {
	if position == 0 {
		return nil, NewConfigError("first item in a path must be a string, got %v", value)
	}
	return NewIndex(value)
}
