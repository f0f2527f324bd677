package calculator

import (
	"math"

	"github.com/rotisserie/eris"

	"reform-engine/internal/scenario"
)

// Model calibration. These are demonstration placeholders chosen to make
// the levers visibly move the outputs; none of them is a validated fiscal
// estimate.
const (
	// BaselineThresholdFPL is the current-law eligibility cutoff, and the
	// denominator of each group's relative reduction.
	BaselineThresholdFPL = scenario.BaselineThresholdFPL

	// EnrollmentResponseFactor is the share of the weighted eligibility cut
	// that turns into lost enrollment.
	EnrollmentResponseFactor = 0.8

	// SavingsCaptureRate is the share of the federal loss recovered per unit
	// of enrollment reduction.
	SavingsCaptureRate = 0.85

	WorkRequirementDisenrollment = 0.15
	WorkRequirementAdminCost     = 0.3 // billions per year

	// SnapBenefitShare scales the federal loss into the SNAP benefit base the
	// state would co-fund.
	SnapBenefitShare = 0.25

	// Revenue in billions per percentage point per million residents.
	IncomeTaxYield   = 0.05
	PropertyTaxYield = 0.04
	SinTaxYield      = 0.002

	AnnualGrowthRate   = 0.02
	TrajectoryBaseYear = 2026
	TrajectoryPoints   = 6

	PeoplePerMillion = 1_000_000
)

const weightSumTolerance = 1e-9

// GroupWeights is each group's share of the eligible population. They
// must sum to 1.
type GroupWeights struct {
	Children float64 `mapstructure:"children" json:"children"`
	Parents  float64 `mapstructure:"parents" json:"parents"`
	Adults   float64 `mapstructure:"adults" json:"adults"`
	Elderly  float64 `mapstructure:"elderly" json:"elderly"`
	Disabled float64 `mapstructure:"disabled" json:"disabled"`
}

func (w GroupWeights) Sum() float64 {
	return w.Children + w.Parents + w.Adults + w.Elderly + w.Disabled
}

// Calibration is the full set of tunable model factors.
type Calibration struct {
	BaselineThreshold            float64      `mapstructure:"baseline_threshold" json:"baseline_threshold"`
	GroupWeights                 GroupWeights `mapstructure:"group_weights" json:"group_weights"`
	EnrollmentResponseFactor     float64      `mapstructure:"enrollment_response_factor" json:"enrollment_response_factor"`
	SavingsCaptureRate           float64      `mapstructure:"savings_capture_rate" json:"savings_capture_rate"`
	WorkRequirementDisenrollment float64      `mapstructure:"work_requirement_disenrollment" json:"work_requirement_disenrollment"`
	WorkRequirementAdminCost     float64      `mapstructure:"work_requirement_admin_cost" json:"work_requirement_admin_cost"`
	SnapBenefitShare             float64      `mapstructure:"snap_benefit_share" json:"snap_benefit_share"`
	IncomeTaxYield               float64      `mapstructure:"income_tax_yield" json:"income_tax_yield"`
	PropertyTaxYield             float64      `mapstructure:"property_tax_yield" json:"property_tax_yield"`
	SinTaxYield                  float64      `mapstructure:"sin_tax_yield" json:"sin_tax_yield"`
	AnnualGrowthRate             float64      `mapstructure:"annual_growth_rate" json:"annual_growth_rate"`
	TrajectoryBaseYear           int          `mapstructure:"trajectory_base_year" json:"trajectory_base_year"`
}

func DefaultCalibration() Calibration {
	return Calibration{
		BaselineThreshold: BaselineThresholdFPL,
		GroupWeights: GroupWeights{
			Children: 0.40,
			Parents:  0.15,
			Adults:   0.25,
			Elderly:  0.10,
			Disabled: 0.10,
		},
		EnrollmentResponseFactor:     EnrollmentResponseFactor,
		SavingsCaptureRate:           SavingsCaptureRate,
		WorkRequirementDisenrollment: WorkRequirementDisenrollment,
		WorkRequirementAdminCost:     WorkRequirementAdminCost,
		SnapBenefitShare:             SnapBenefitShare,
		IncomeTaxYield:               IncomeTaxYield,
		PropertyTaxYield:             PropertyTaxYield,
		SinTaxYield:                  SinTaxYield,
		AnnualGrowthRate:             AnnualGrowthRate,
		TrajectoryBaseYear:           TrajectoryBaseYear,
	}
}

// Validate rejects factors that would make the model meaningless.
func (c Calibration) Validate() error {
	if c.BaselineThreshold <= 0 {
		return eris.Errorf("calibration: baseline_threshold must be positive, got %v", c.BaselineThreshold)
	}
	w := c.GroupWeights
	if w.Children < 0 || w.Parents < 0 || w.Adults < 0 || w.Elderly < 0 || w.Disabled < 0 {
		return eris.New("calibration: group weights must be non-negative")
	}
	if math.Abs(w.Sum()-1) > weightSumTolerance {
		return eris.Errorf("calibration: group weights must sum to 1, got %v", w.Sum())
	}
	factors := map[string]float64{
		"enrollment_response_factor":     c.EnrollmentResponseFactor,
		"savings_capture_rate":           c.SavingsCaptureRate,
		"work_requirement_disenrollment": c.WorkRequirementDisenrollment,
		"work_requirement_admin_cost":    c.WorkRequirementAdminCost,
		"snap_benefit_share":             c.SnapBenefitShare,
		"income_tax_yield":               c.IncomeTaxYield,
		"property_tax_yield":             c.PropertyTaxYield,
		"sin_tax_yield":                  c.SinTaxYield,
		"annual_growth_rate":             c.AnnualGrowthRate,
	}
	for name, v := range factors {
		if v < 0 {
			return eris.Errorf("calibration: %s must be non-negative, got %v", name, v)
		}
	}
	return nil
}
