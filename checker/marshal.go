package checker

import (
	"github.com/francoispqt/gojay"
)

//MarshalJSONObject encodes violation with gojay
func (v *Violation) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("Location", v.Location)
	enc.StringKey("Field", v.Field)
	enc.AddInterfaceKey("Value", v.Value)
	enc.StringKey("Check", v.Check)
	enc.StringKey("Message", v.Message)
}

//IsNil returns true if receiver is nil
func (v *Violation) IsNil() bool {
	return v == nil
}

//MarshalJSONObject encodes validation with gojay
func (v *Validation) MarshalJSONObject(enc *gojay.Encoder) {
	enc.BoolKey("Failed", v.Failed)
	enc.ArrayKey("Violations", violations(v.Violations))
}

//IsNil returns true if receiver is nil
func (v *Validation) IsNil() bool {
	return v == nil
}

type violations []*Violation

//MarshalJSONArray encodes violations with gojay
func (v violations) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range v {
		enc.Object(item)
	}
}

//IsNil returns true on empty collection
func (v violations) IsNil() bool {
	return len(v) == 0
}
