package node

//Object represents an object node container preserving key order
type Object struct {
	keys   []string
	values map[string]*Node
}

func newObject() *Object {
	return &Object{values: map[string]*Node{}}
}

//Put sets value for supplied key
func (o *Object) Put(key string, value *Node) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

//Value returns node for supplied key
func (o *Object) Value(key string) (*Node, bool) {
	value, ok := o.values[key]
	return value, ok
}

//Has returns true when key is present
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

//Keys returns keys in insertion order
func (o *Object) Keys() []string {
	return o.keys
}

//Size returns number of keys
func (o *Object) Size() int {
	return len(o.keys)
}

//Pairs iterates key value pairs in insertion order until handler returns false
func (o *Object) Pairs(handler func(key string, value *Node) bool) {
	for _, key := range o.keys {
		if !handler(key, o.values[key]) {
			return
		}
	}
}
