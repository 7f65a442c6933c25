package node

//Node represents a parsed JSON tree node, exactly one variant is populated
type Node struct {
	kind    Kind
	boolean bool
	integer int64
	number  float64
	isInt   bool
	text    string
	items   []*Node
	object  *Object
}

//Kind returns node kind
func (n *Node) Kind() Kind {
	return n.kind
}

//IsNull returns true for null node
func (n *Node) IsNull() bool {
	return n.kind == KindNull
}

//Object returns object container or nil for non object node
func (n *Node) Object() *Object {
	if n.kind != KindObject {
		return nil
	}
	return n.object
}

//Value returns child node for supplied key on an object node
func (n *Node) Value(key string) (*Node, bool) {
	if n.kind != KindObject {
		return nil, false
	}
	return n.object.Value(key)
}

//Item returns i-th element of an array node
func (n *Node) Item(index int) (*Node, bool) {
	if n.kind != KindArray {
		return nil, false
	}
	if index < 0 || index >= len(n.items) {
		return nil, false
	}
	return n.items[index], true
}

//Items returns array node elements
func (n *Node) Items() []*Node {
	return n.items
}

//Size returns number of children
func (n *Node) Size() int {
	switch n.kind {
	case KindArray:
		return len(n.items)
	case KindObject:
		return n.object.Size()
	}
	return 0
}

//Put sets key on an object node, returns node for chaining
func (n *Node) Put(key string, child *Node) *Node {
	if n.kind == KindObject {
		n.object.Put(key, child)
	}
	return n
}

//Append adds elements to an array node, returns node for chaining
func (n *Node) Append(items ...*Node) *Node {
	if n.kind == KindArray {
		n.items = append(n.items, items...)
	}
	return n
}

//StringValue returns text of a string node
func (n *Node) StringValue() (string, bool) {
	if n.kind != KindString {
		return "", false
	}
	return n.text, true
}

//IntValue returns integral value of a number node
func (n *Node) IntValue() (int64, bool) {
	if n.kind != KindNumber || !n.isInt {
		return 0, false
	}
	return n.integer, true
}

//FloatValue returns value of a number node
func (n *Node) FloatValue() (float64, bool) {
	if n.kind != KindNumber {
		return 0, false
	}
	return n.number, true
}

//BoolValue returns value of a bool node
func (n *Node) BoolValue() (bool, bool) {
	if n.kind != KindBool {
		return false, false
	}
	return n.boolean, true
}

//Interface returns native Go value for the node
func (n *Node) Interface() interface{} {
	switch n.kind {
	case KindNull:
		return nil
	case KindBool:
		return n.boolean
	case KindNumber:
		if n.isInt {
			return n.integer
		}
		return n.number
	case KindString:
		return n.text
	case KindArray:
		result := make([]interface{}, len(n.items))
		for i, item := range n.items {
			result[i] = item.Interface()
		}
		return result
	case KindObject:
		result := make(map[string]interface{}, n.object.Size())
		n.object.Pairs(func(key string, child *Node) bool {
			result[key] = child.Interface()
			return true
		})
		return result
	}
	return nil
}

//NewNull creates a null node
func NewNull() *Node {
	return &Node{kind: KindNull}
}

//NewBool creates a bool node
func NewBool(value bool) *Node {
	return &Node{kind: KindBool, boolean: value}
}

//NewInt creates an integral number node
func NewInt(value int64) *Node {
	return &Node{kind: KindNumber, integer: value, number: float64(value), isInt: true}
}

//NewFloat creates a number node
func NewFloat(value float64) *Node {
	return &Node{kind: KindNumber, number: value}
}

//NewString creates a string node
func NewString(value string) *Node {
	return &Node{kind: KindString, text: value}
}

//NewArray creates an array node
func NewArray(items ...*Node) *Node {
	return &Node{kind: KindArray, items: items}
}

//NewObject creates an empty object node
func NewObject() *Node {
	return &Node{kind: KindObject, object: newObject()}
}
