package checker

import (
	"fmt"
	"strings"
)

//Violation represents a single check failure
type Violation struct {
	Location string
	Field    string
	Value    interface{}
	Check    string
	Message  string
}

//Validation represents the outcome of validating one input
type Validation struct {
	Violations []*Violation
	Failed     bool
}

//Append adds a violation
func (v *Validation) Append(location, field string, value interface{}, check, message string) {
	v.AddViolation(&Violation{Location: location, Field: field, Value: value, Check: check, Message: message})
}

//AddViolation adds a violation
func (v *Validation) AddViolation(violation *Violation) {
	v.Violations = append(v.Violations, violation)
	v.Failed = true
}

//Merge adds violations from the supplied validation
func (v *Validation) Merge(validation *Validation) {
	if validation == nil || len(validation.Violations) == 0 {
		return
	}
	v.Violations = append(v.Violations, validation.Violations...)
	v.Failed = true
}

//String returns validation summary
func (v *Validation) String() string {
	if !v.Failed {
		return "passed"
	}
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("failed with %v violation(s)", len(v.Violations)))
	for _, violation := range v.Violations {
		builder.WriteString("\n\t")
		builder.WriteString(violation.Location)
		builder.WriteString(": ")
		builder.WriteString(violation.Message)
	}
	return builder.String()
}

//NewValidation creates a validation
func NewValidation() *Validation {
	return &Validation{Violations: make([]*Violation, 0)}
}
