package mutations

import (
	"reform-engine/internal/model"
	"reform-engine/internal/scenario"
)

type setSnapCostSharingProps struct {
	Enabled      *bool `json:"enabled"`
	SharePercent *int  `json:"share_percent"`
}

type SetSnapCostSharingHandler struct{}

func (h *SetSnapCostSharingHandler) Validate(env *Env, s model.Scenario, mutation *model.Mutation) []model.CalculationMessage {
	var props setSnapCostSharingProps
	if err := decodeProps(mutation, &props); err != nil {
		return invalidProps(err.Error())
	}
	if props.Enabled == nil && props.SharePercent == nil {
		return invalidProps("enabled or share_percent is required")
	}
	return nil
}

func (h *SetSnapCostSharingHandler) Apply(env *Env, s model.Scenario, mutation *model.Mutation) (model.Scenario, []model.CalculationMessage) {
	var props setSnapCostSharingProps
	decodeProps(mutation, &props)

	var msgs []model.CalculationMessage
	snap := s.Snap
	if props.Enabled != nil {
		snap.Enabled = *props.Enabled
	}
	if props.SharePercent != nil {
		share := scenario.ClampSharePercent(*props.SharePercent)
		if share != *props.SharePercent {
			msgs = append(msgs, scenario.ClampedMessage("share_percent", *props.SharePercent))
		}
		snap.SharePercent = share
	}

	return s.WithSnap(snap), msgs
}
