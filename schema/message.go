package schema

import (
	"github.com/viant/velty"
	"github.com/viant/velty/est"
)

//messageEvaluator expands a violation message template with $Field, $Value and $Check variables
type messageEvaluator struct {
	executor *est.Execution
	newState func() *est.State
}

//Evaluate expands message template with supplied variables
func (e *messageEvaluator) Evaluate(field, value, check string) (string, error) {
	state := e.newState()
	if err := state.SetValue("Field", field); err != nil {
		return "", err
	}
	if err := state.SetValue("Value", value); err != nil {
		return "", err
	}
	if err := state.SetValue("Check", check); err != nil {
		return "", err
	}
	if err := e.executor.Exec(state); err != nil {
		return "", err
	}
	return state.Buffer.String(), nil
}

func newMessageEvaluator(template string) (*messageEvaluator, error) {
	planner := velty.New(velty.BufferSize(len(template)))
	var err error
	if err = planner.DefineVariable("Field", ""); err != nil {
		return nil, err
	}
	if err = planner.DefineVariable("Value", ""); err != nil {
		return nil, err
	}
	if err = planner.DefineVariable("Check", ""); err != nil {
		return nil, err
	}
	result := &messageEvaluator{}
	if result.executor, result.newState, err = planner.Compile([]byte(template)); err != nil {
		return nil, err
	}
	return result, nil
}
