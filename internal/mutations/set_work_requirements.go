package mutations

import (
	"slices"

	"reform-engine/internal/model"
	"reform-engine/internal/scenario"
)

type setWorkRequirementsProps struct {
	Enabled      *bool `json:"enabled"`
	HoursPerWeek *int  `json:"hours_per_week"`
}

// SetWorkRequirementsHandler toggles work requirements and/or changes the
// weekly hours. Omitted properties keep their current value.
type SetWorkRequirementsHandler struct{}

func (h *SetWorkRequirementsHandler) Validate(env *Env, s model.Scenario, mutation *model.Mutation) []model.CalculationMessage {
	var props setWorkRequirementsProps
	if err := decodeProps(mutation, &props); err != nil {
		return invalidProps(err.Error())
	}
	if props.Enabled == nil && props.HoursPerWeek == nil {
		return invalidProps("enabled or hours_per_week is required")
	}
	return nil
}

func (h *SetWorkRequirementsHandler) Apply(env *Env, s model.Scenario, mutation *model.Mutation) (model.Scenario, []model.CalculationMessage) {
	var props setWorkRequirementsProps
	decodeProps(mutation, &props)

	var msgs []model.CalculationMessage
	work := s.Work
	if props.Enabled != nil {
		work.Enabled = *props.Enabled
	}
	if props.HoursPerWeek != nil {
		hours := *props.HoursPerWeek
		if !slices.Contains(scenario.AllowedWorkHours, hours) {
			msgs = append(msgs, scenario.ClampedMessage("hours_per_week", hours))
			hours = scenario.ClampWorkHours(hours)
		}
		work.HoursPerWeek = hours
	}

	return s.WithWork(work), msgs
}
