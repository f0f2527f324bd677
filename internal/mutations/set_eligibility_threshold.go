package mutations

import (
	"reform-engine/internal/model"
	"reform-engine/internal/scenario"
)

type setEligibilityThresholdProps struct {
	Group     string `json:"group"`
	Threshold *int   `json:"threshold"`
}

type SetEligibilityThresholdHandler struct{}

func (h *SetEligibilityThresholdHandler) Validate(env *Env, s model.Scenario, mutation *model.Mutation) []model.CalculationMessage {
	var props setEligibilityThresholdProps
	if err := decodeProps(mutation, &props); err != nil {
		return invalidProps(err.Error())
	}

	if _, ok := s.Eligibility.Get(model.Group(props.Group)); !ok {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeUnknownGroup,
			Message: "Unknown eligibility group: " + props.Group,
		}}
	}

	if props.Threshold == nil {
		return invalidProps("threshold is required")
	}
	return nil
}

func (h *SetEligibilityThresholdHandler) Apply(env *Env, s model.Scenario, mutation *model.Mutation) (model.Scenario, []model.CalculationMessage) {
	var props setEligibilityThresholdProps
	decodeProps(mutation, &props)

	var msgs []model.CalculationMessage
	v := scenario.ClampThreshold(*props.Threshold)
	if v != *props.Threshold {
		msgs = append(msgs, scenario.ClampedMessage("threshold", *props.Threshold))
	}

	return s.WithThreshold(model.Group(props.Group), v), msgs
}
