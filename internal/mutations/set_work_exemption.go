package mutations

import (
	"reform-engine/internal/model"
)

type setWorkExemptionProps struct {
	Exemption string `json:"exemption"`
	Exempt    *bool  `json:"exempt"`
}

type SetWorkExemptionHandler struct{}

func (h *SetWorkExemptionHandler) Validate(env *Env, s model.Scenario, mutation *model.Mutation) []model.CalculationMessage {
	var props setWorkExemptionProps
	if err := decodeProps(mutation, &props); err != nil {
		return invalidProps(err.Error())
	}

	if _, ok := s.Work.Exemptions.Get(model.Exemption(props.Exemption)); !ok {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeUnknownExemption,
			Message: "Unknown work requirement exemption: " + props.Exemption,
		}}
	}

	if props.Exempt == nil {
		return invalidProps("exempt is required")
	}
	return nil
}

func (h *SetWorkExemptionHandler) Apply(env *Env, s model.Scenario, mutation *model.Mutation) (model.Scenario, []model.CalculationMessage) {
	var props setWorkExemptionProps
	decodeProps(mutation, &props)

	work := s.Work
	work.Exemptions = work.Exemptions.With(model.Exemption(props.Exemption), *props.Exempt)
	return s.WithWork(work), nil
}
