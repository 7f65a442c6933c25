package lookup

import (
	"github.com/viant/fieldly/node"
	"strings"
)

//KeyKind represents a lookup key kind
type KeyKind int

const (
	//KeyKindSimple represents a single name key
	KeyKindSimple = KeyKind(iota + 1)
	//KeyKindChoice represents a primary name with a fallback name
	KeyKindChoice
	//KeyKindPaths represents ordered alias paths, first fully resolved path wins
	KeyKindPaths
)

//Key represents an immutable field lookup strategy shared by concurrent lookups;
//each retrieval returns the matched name, the located value and a found flag,
//absence is never an error
type Key interface {
	Kind() KeyKind

	//Object locates value within an attribute bearing source
	Object(source interface{}) (string, interface{}, bool, error)

	//Mapping locates value within a string keyed map source
	Mapping(source map[string]interface{}) (string, interface{}, bool, error)

	//Node locates value within a JSON tree source
	Node(source *node.Node) (string, *node.Node, bool, error)

	String() string

	key()
}

//Simple represents a single name key
type Simple struct {
	name *Name
}

//Kind returns key kind
func (s *Simple) Kind() KeyKind {
	return KeyKindSimple
}

//Name returns lookup name
func (s *Simple) Name() string {
	return s.name.value
}

//Object locates value within an attribute bearing source
func (s *Simple) Object(source interface{}) (string, interface{}, bool, error) {
	value, ok, err := objectName(source, s.name)
	if err != nil || !ok {
		return "", nil, false, err
	}
	return s.name.value, value, true, nil
}

//Mapping locates value within a string keyed map source
func (s *Simple) Mapping(source map[string]interface{}) (string, interface{}, bool, error) {
	value, ok := source[s.name.value]
	if !ok {
		return "", nil, false, nil
	}
	return s.name.value, value, true, nil
}

//Node locates value within a JSON tree source
func (s *Simple) Node(source *node.Node) (string, *node.Node, bool, error) {
	if source == nil {
		return "", nil, false, nil
	}
	child, ok := source.Value(s.name.value)
	if !ok {
		return "", nil, false, nil
	}
	return s.name.value, child, true, nil
}

//String returns key text form
func (s *Simple) String() string {
	return s.name.value
}

func (s *Simple) key() {}

//Choice represents a primary name tried before a fallback name, a fault on the
//primary aborts resolution without consulting the fallback
type Choice struct {
	primary   *Name
	secondary *Name
}

//Kind returns key kind
func (c *Choice) Kind() KeyKind {
	return KeyKindChoice
}

//Names returns primary and fallback name
func (c *Choice) Names() (string, string) {
	return c.primary.value, c.secondary.value
}

//Object locates value within an attribute bearing source
func (c *Choice) Object(source interface{}) (string, interface{}, bool, error) {
	for _, name := range []*Name{c.primary, c.secondary} {
		value, ok, err := objectName(source, name)
		if err != nil {
			return "", nil, false, err
		}
		if ok {
			return name.value, value, true, nil
		}
	}
	return "", nil, false, nil
}

//Mapping locates value within a string keyed map source
func (c *Choice) Mapping(source map[string]interface{}) (string, interface{}, bool, error) {
	if value, ok := source[c.primary.value]; ok {
		return c.primary.value, value, true, nil
	}
	if value, ok := source[c.secondary.value]; ok {
		return c.secondary.value, value, true, nil
	}
	return "", nil, false, nil
}

//Node locates value within a JSON tree source
func (c *Choice) Node(source *node.Node) (string, *node.Node, bool, error) {
	if source == nil {
		return "", nil, false, nil
	}
	if child, ok := source.Value(c.primary.value); ok {
		return c.primary.value, child, true, nil
	}
	if child, ok := source.Value(c.secondary.value); ok {
		return c.secondary.value, child, true, nil
	}
	return "", nil, false, nil
}

//String returns key text form
func (c *Choice) String() string {
	return c.primary.value + " | " + c.secondary.value
}

func (c *Choice) key() {}

//Paths represents ordered alias paths, each path is walked left to right and the
//first fully resolved path wins regardless of later path depth
type Paths struct {
	paths []*Path
}

//Kind returns key kind
func (p *Paths) Kind() KeyKind {
	return KeyKindPaths
}

//Paths returns alias paths
func (p *Paths) Paths() []*Path {
	return p.paths
}

//Object locates value within an attribute bearing source
func (p *Paths) Object(source interface{}) (string, interface{}, bool, error) {
outer:
	for _, aPath := range p.paths {
		current := source
		for _, segment := range aPath.segments {
			next, ok, err := objectStep(current, segment)
			if err != nil {
				return "", nil, false, err
			}
			if !ok {
				continue outer
			}
			current = next
		}
		return aPath.First().value, current, true, nil
	}
	return "", nil, false, nil
}

//Mapping locates value within a string keyed map source
func (p *Paths) Mapping(source map[string]interface{}) (string, interface{}, bool, error) {
outer:
	for _, aPath := range p.paths {
		var current interface{} = source
		for _, segment := range aPath.segments {
			next, ok := mappingStep(current, segment)
			if !ok {
				continue outer
			}
			current = next
		}
		return aPath.First().value, current, true, nil
	}
	return "", nil, false, nil
}

//Node locates value within a JSON tree source
func (p *Paths) Node(source *node.Node) (string, *node.Node, bool, error) {
outer:
	for _, aPath := range p.paths {
		current := source
		for _, segment := range aPath.segments {
			next, ok := nodeStep(current, segment)
			if !ok {
				continue outer
			}
			current = next
		}
		return aPath.First().value, current, true, nil
	}
	return "", nil, false, nil
}

//String returns key text form
func (p *Paths) String() string {
	items := make([]string, 0, len(p.paths))
	for _, aPath := range p.paths {
		items = append(items, aPath.String())
	}
	return strings.Join(items, " | ")
}

func (p *Paths) key() {}

//New creates a lookup key for the supplied options; it returns a nil key when
//neither alias nor fallback is defined, in that case the caller keeps using the
//declared field name
func New(opts ...Option) (Key, error) {
	aOptions := &Options{}
	options(opts).Apply(aOptions)
	return newKey(aOptions)
}

func newKey(opts *Options) (Key, error) {
	if opts.Alias != "" && opts.Aliases != nil {
		return nil, NewConfigError("alias and aliases options are mutually exclusive")
	}
	switch {
	case opts.Alias != "":
		primary := NewName(opts.Alias, opts.CaseFormat)
		if opts.Fallback == "" {
			return &Simple{name: primary}, nil
		}
		return &Choice{primary: primary, secondary: NewName(opts.Fallback, opts.CaseFormat)}, nil
	case opts.Aliases != nil:
		if len(opts.Aliases) == 0 {
			return nil, NewConfigError("aliases must have at least one element")
		}
		paths := make([]*Path, 0, len(opts.Aliases)+1)
		for _, elements := range opts.Aliases {
			aPath, err := NewPath(elements, opts.CaseFormat)
			if err != nil {
				return nil, err
			}
			paths = append(paths, aPath)
		}
		if opts.Fallback != "" {
			aPath, err := NewPath([]interface{}{opts.Fallback}, opts.CaseFormat)
			if err != nil {
				return nil, err
			}
			paths = append(paths, aPath)
		}
		return &Paths{paths: paths}, nil
	case opts.Fallback != "":
		return &Simple{name: NewName(opts.Fallback, opts.CaseFormat)}, nil
	}
	return nil, nil
}
