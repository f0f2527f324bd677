package mutations

import (
	"reform-engine/internal/model"
	"reform-engine/internal/scenario"
)

// ResetToBaselineHandler restores every lever to its baseline value for
// the selected state.
type ResetToBaselineHandler struct{}

func (h *ResetToBaselineHandler) Validate(env *Env, s model.Scenario, mutation *model.Mutation) []model.CalculationMessage {
	return nil
}

func (h *ResetToBaselineHandler) Apply(env *Env, s model.Scenario, mutation *model.Mutation) (model.Scenario, []model.CalculationMessage) {
	return scenario.Reset(s), nil
}
