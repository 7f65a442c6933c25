package node

import (
	"bytes"
	"fmt"
	"github.com/francoispqt/gojay"
	"strings"
)

//Parse builds a node tree from JSON data
func Parse(data []byte) (*Node, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("failed to parse node: empty input")
	}
	switch data[0] {
	case '{':
		result := NewObject()
		builder := &objectBuilder{object: result.object}
		if err := gojay.UnmarshalJSONObject(data, builder); err != nil {
			return nil, err
		}
		return result, nil
	case '[':
		builder := &arrayBuilder{}
		if err := gojay.UnmarshalJSONArray(data, builder); err != nil {
			return nil, err
		}
		return &Node{kind: KindArray, items: builder.items}, nil
	}
	return parseScalar(data)
}

//ParseString builds a node tree from JSON text
func ParseString(text string) (*Node, error) {
	return Parse([]byte(text))
}

func parseScalar(data []byte) (*Node, error) {
	text := string(data)
	switch text {
	case "null":
		return NewNull(), nil
	case "true":
		return NewBool(true), nil
	case "false":
		return NewBool(false), nil
	}
	if data[0] == '"' {
		value := ""
		if err := gojay.Unmarshal(data, &value); err != nil {
			return nil, err
		}
		return NewString(value), nil
	}
	if !strings.ContainsAny(text, ".eE") {
		value := int64(0)
		if err := gojay.Unmarshal(data, &value); err == nil {
			return NewInt(value), nil
		}
	}
	value := float64(0)
	if err := gojay.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("failed to parse node, invalid value: %s", text)
	}
	return NewFloat(value), nil
}

type objectBuilder struct {
	object *Object
}

func (b *objectBuilder) UnmarshalJSONObject(decoder *gojay.Decoder, key string) error {
	embedded := gojay.EmbeddedJSON{}
	if err := decoder.EmbeddedJSON(&embedded); err != nil {
		return err
	}
	child, err := Parse(embedded)
	if err != nil {
		return err
	}
	b.object.Put(key, child)
	return nil
}

func (b *objectBuilder) NKeys() int {
	return 0
}

type arrayBuilder struct {
	items []*Node
}

func (b *arrayBuilder) UnmarshalJSONArray(decoder *gojay.Decoder) error {
	embedded := gojay.EmbeddedJSON{}
	if err := decoder.EmbeddedJSON(&embedded); err != nil {
		return err
	}
	child, err := Parse(embedded)
	if err != nil {
		return err
	}
	b.items = append(b.items, child)
	return nil
}
