package model

// ScenarioRecord is the flat serialised form of a Scenario, one field per
// lever. The validate tags carry the input ranges; values outside them are
// clamped, not rejected.
type ScenarioRecord struct {
	State string `json:"state" yaml:"state"`

	ChildrenFPL int `json:"children_fpl" yaml:"children_fpl" validate:"gte=0,lte=200"`
	ParentsFPL  int `json:"parents_fpl" yaml:"parents_fpl" validate:"gte=0,lte=200"`
	AdultsFPL   int `json:"adults_fpl" yaml:"adults_fpl" validate:"gte=0,lte=200"`
	ElderlyFPL  int `json:"elderly_fpl" yaml:"elderly_fpl" validate:"gte=0,lte=200"`
	DisabledFPL int `json:"disabled_fpl" yaml:"disabled_fpl" validate:"gte=0,lte=200"`

	WorkRequirements bool `json:"work_requirements" yaml:"work_requirements"`
	WorkHoursPerWeek int  `json:"work_hours_per_week" yaml:"work_hours_per_week" validate:"omitempty,oneof=20 30 35"`
	ExemptPregnant   bool `json:"exempt_pregnant" yaml:"exempt_pregnant"`
	ExemptDisabled   bool `json:"exempt_disabled" yaml:"exempt_disabled"`
	ExemptCaregivers bool `json:"exempt_caregivers" yaml:"exempt_caregivers"`
	ExemptStudents   bool `json:"exempt_students" yaml:"exempt_students"`

	SnapCostSharing  bool `json:"snap_cost_sharing" yaml:"snap_cost_sharing"`
	SnapSharePercent int  `json:"snap_share_percent" yaml:"snap_share_percent" validate:"gte=0,lte=30"`

	IncomeTaxIncrease   float64 `json:"income_tax_increase" yaml:"income_tax_increase" validate:"gte=0,lte=5"`
	PropertyTaxIncrease float64 `json:"property_tax_increase" yaml:"property_tax_increase" validate:"gte=0,lte=5"`
	SinTaxIncrease      int     `json:"sin_tax_increase" yaml:"sin_tax_increase" validate:"gte=0,lte=100"`
}
