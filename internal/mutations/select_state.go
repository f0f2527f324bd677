package mutations

import (
	"reform-engine/internal/model"
)

type selectStateProps struct {
	State string `json:"state"`
}

// SelectStateHandler switches the reference profile and keeps every lever.
type SelectStateHandler struct{}

func (h *SelectStateHandler) Validate(env *Env, s model.Scenario, mutation *model.Mutation) []model.CalculationMessage {
	var props selectStateProps
	if err := decodeProps(mutation, &props); err != nil {
		return invalidProps(err.Error())
	}

	if _, ok := env.States.Lookup(props.State); !ok {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeUnknownState,
			Message: "Unknown state: " + props.State,
		}}
	}
	return nil
}

func (h *SelectStateHandler) Apply(env *Env, s model.Scenario, mutation *model.Mutation) (model.Scenario, []model.CalculationMessage) {
	var props selectStateProps
	decodeProps(mutation, &props)

	profile, _ := env.States.Lookup(props.State)
	return s.WithState(profile), nil
}
