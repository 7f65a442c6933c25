package node

import (
	"bytes"
	"github.com/francoispqt/gojay"
)

var nullBytes = []byte("null")

//Bytes returns compact JSON representation of the node
func (n *Node) Bytes() ([]byte, error) {
	if n.kind == KindNull {
		return nullBytes, nil
	}
	buffer := new(bytes.Buffer)
	encoder := gojay.NewEncoder(buffer)
	var err error
	switch n.kind {
	case KindBool:
		err = encoder.EncodeBool(n.boolean)
	case KindNumber:
		if n.isInt {
			err = encoder.EncodeInt64(n.integer)
		} else {
			err = encoder.EncodeFloat(n.number)
		}
	case KindString:
		err = encoder.EncodeString(n.text)
	case KindArray:
		err = encoder.EncodeArray(&arrayEncoder{items: n.items})
	case KindObject:
		err = encoder.EncodeObject(&objectEncoder{object: n.object})
	}
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func (n *Node) String() string {
	data, err := n.Bytes()
	if err != nil {
		return ""
	}
	return string(data)
}

type objectEncoder struct {
	object *Object
}

func (e *objectEncoder) IsNil() bool {
	return e == nil || e.object == nil
}

func (e *objectEncoder) MarshalJSONObject(enc *gojay.Encoder) {
	e.object.Pairs(func(key string, value *Node) bool {
		switch value.kind {
		case KindNull:
			enc.NullKey(key)
		case KindBool:
			enc.BoolKey(key, value.boolean)
		case KindNumber:
			if value.isInt {
				enc.Int64Key(key, value.integer)
			} else {
				enc.FloatKey(key, value.number)
			}
		case KindString:
			enc.StringKey(key, value.text)
		case KindArray:
			enc.ArrayKey(key, &arrayEncoder{items: value.items})
		case KindObject:
			enc.ObjectKey(key, &objectEncoder{object: value.object})
		}
		return true
	})
}

type arrayEncoder struct {
	items []*Node
}

func (e *arrayEncoder) IsNil() bool {
	return e == nil
}

func (e *arrayEncoder) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range e.items {
		switch item.kind {
		case KindNull:
			enc.Null()
		case KindBool:
			enc.Bool(item.boolean)
		case KindNumber:
			if item.isInt {
				enc.Int64(item.integer)
			} else {
				enc.Float(item.number)
			}
		case KindString:
			enc.String(item.text)
		case KindArray:
			enc.Array(&arrayEncoder{items: item.items})
		case KindObject:
			enc.Object(&objectEncoder{object: item.object})
		}
	}
}
