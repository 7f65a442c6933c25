package checker

import (
	"github.com/pkg/errors"
	"strings"
	"sync"
)

//Registry represents a checker factory registry
type Registry struct {
	mux       sync.RWMutex
	factories map[string]Factory
}

//Register registers checker factory
func (r *Registry) Register(factory Factory) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.factories[strings.ToLower(factory.Name())] = factory
}

//Lookup returns checker factory
func (r *Registry) Lookup(name string) (Factory, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	result, ok := r.factories[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("failed to lookup checker: %v", name)
	}
	return result, nil
}

//Keys returns registered checker names
func (r *Registry) Keys() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	var result = make([]string, 0)
	for k := range r.factories {
		result = append(result, k)
	}
	return result
}

//Compile creates a compiled check
func (r *Registry) Compile(check *Check) (*Compiled, error) {
	if check.Name == "" {
		return nil, errors.New("check name was empty")
	}
	factory, err := r.Lookup(check.Name)
	if err != nil {
		return nil, err
	}
	aChecker, err := factory.New(check)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile %v check", check.Name)
	}
	return &Compiled{Check: check, checker: aChecker}, nil
}

//New creates a registry with built in checkers
func New() *Registry {
	result := &Registry{factories: make(map[string]Factory)}
	result.Register(&stringFactory{})
	result.Register(&intFactory{})
	result.Register(&floatFactory{})
	result.Register(&boolFactory{})
	result.Register(&timeFactory{})
	result.Register(&uuidFactory{})
	result.Register(&enumFactory{})
	return result
}

var registry = New()

//Default returns the shared registry
func Default() *Registry {
	return registry
}

//Register registers checker factory in the shared registry
func Register(factory Factory) {
	registry.Register(factory)
}

//Lookup returns checker factory from the shared registry
func Lookup(name string) (Factory, error) {
	return registry.Lookup(name)
}

//Compile creates a compiled check with the shared registry
func Compile(check *Check) (*Compiled, error) {
	return registry.Compile(check)
}
