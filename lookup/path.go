package lookup

import (
	"github.com/viant/tagly/format/text"
	"strings"
)

//Path represents an ordered sequence of lookup segments
type Path struct {
	segments []Segment
}

//First returns the leading name segment
func (p *Path) First() *Name {
	return p.segments[0].(*Name)
}

//Segments returns path segments
func (p *Path) Segments() []Segment {
	return p.segments
}

//String returns a dotted text form of the path
func (p *Path) String() string {
	builder := strings.Builder{}
	for i, segment := range p.segments {
		if i > 0 && segment.Kind() == SegmentKindName {
			builder.WriteByte('.')
		}
		builder.WriteString(segment.String())
	}
	return builder.String()
}

//NewPath creates a path from raw elements; the first element has to be a name
func NewPath(elements []interface{}, caseFormat text.CaseFormat) (*Path, error) {
	if len(elements) == 0 {
		return nil, NewConfigError("each path must have at least one element")
	}
	segments := make([]Segment, 0, len(elements))
	for i, element := range elements {
		segment, err := NewSegment(element, i, caseFormat)
		if err != nil {
			return nil, err
		}
		segments = append(segments, segment)
	}
	return &Path{segments: segments}, nil
}
