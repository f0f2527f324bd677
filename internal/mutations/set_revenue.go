package mutations

import (
	"math"

	"reform-engine/internal/model"
	"reform-engine/internal/scenario"
)

type setRevenueProps struct {
	IncomeTaxIncrease   *float64 `json:"income_tax_increase"`
	PropertyTaxIncrease *float64 `json:"property_tax_increase"`
	SinTaxIncrease      *int     `json:"sin_tax_increase"`
}

// SetRevenueHandler changes any subset of the three tax levers. Income and
// property increases are rounded to the 0.1 point step without a warning.
type SetRevenueHandler struct{}

func (h *SetRevenueHandler) Validate(env *Env, s model.Scenario, mutation *model.Mutation) []model.CalculationMessage {
	var props setRevenueProps
	if err := decodeProps(mutation, &props); err != nil {
		return invalidProps(err.Error())
	}
	if props.IncomeTaxIncrease == nil && props.PropertyTaxIncrease == nil && props.SinTaxIncrease == nil {
		return invalidProps("at least one tax increase is required")
	}
	return nil
}

func (h *SetRevenueHandler) Apply(env *Env, s model.Scenario, mutation *model.Mutation) (model.Scenario, []model.CalculationMessage) {
	var props setRevenueProps
	decodeProps(mutation, &props)

	var msgs []model.CalculationMessage
	rev := s.Revenue
	if props.IncomeTaxIncrease != nil {
		v := *props.IncomeTaxIncrease
		if taxOutOfRange(v) {
			msgs = append(msgs, scenario.ClampedMessage("income_tax_increase", v))
		}
		rev.IncomeTaxIncrease = scenario.QuantizeTaxIncrease(v)
	}
	if props.PropertyTaxIncrease != nil {
		v := *props.PropertyTaxIncrease
		if taxOutOfRange(v) {
			msgs = append(msgs, scenario.ClampedMessage("property_tax_increase", v))
		}
		rev.PropertyTaxIncrease = scenario.QuantizeTaxIncrease(v)
	}
	if props.SinTaxIncrease != nil {
		v := scenario.ClampSinTaxIncrease(*props.SinTaxIncrease)
		if v != *props.SinTaxIncrease {
			msgs = append(msgs, scenario.ClampedMessage("sin_tax_increase", *props.SinTaxIncrease))
		}
		rev.SinTaxIncrease = v
	}

	return s.WithRevenue(rev), msgs
}

func taxOutOfRange(v float64) bool {
	return math.IsNaN(v) || v < 0 || v > scenario.MaxTaxIncrease
}
