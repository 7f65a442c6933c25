package lookup

import (
	"github.com/viant/fieldly/shared"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
	"reflect"
	"sync"
)

//handle caches per-type struct field resolution for a path element
type handle struct {
	name       string
	caseFormat text.CaseFormat
	fields     sync.Map
}

//field returns xunsafe field for the supplied struct type, nil when no field matches
func (h *handle) field(rType reflect.Type) *xunsafe.Field {
	value, ok := h.fields.Load(rType)
	if ok {
		if value == nil {
			return nil
		}
		return value.(*xunsafe.Field)
	}
	result := shared.MatchField(rType, h.name, h.caseFormat)
	if result == nil {
		h.fields.Store(rType, nil)
		return nil
	}
	h.fields.Store(rType, result)
	return result
}

func newHandle(name string, caseFormat text.CaseFormat) *handle {
	if caseFormat == "" {
		caseFormat = text.DetectCaseFormat(name)
	}
	return &handle{name: name, caseFormat: caseFormat}
}
