package scenario

import (
	"math"

	"reform-engine/internal/model"
)

// Input ranges for every lever.
const (
	BaselineThresholdFPL = 138
	MinThresholdFPL      = 0
	MaxThresholdFPL      = 200

	DefaultWorkHours = 20

	MaxSnapSharePercent = 30

	MaxTaxIncrease    = 5.0
	TaxStepsPerPoint  = 10 // 0.1 point slider step
	MaxSinTaxIncrease = 100
)

// AllowedWorkHours are the weekly hour options for work requirements.
var AllowedWorkHours = []int{20, 30, 35}

// Baseline returns the current-law scenario for a state: every threshold at
// 138% FPL, no work requirements, no SNAP cost sharing, no new taxes.
func Baseline(p model.StateProfile) model.Scenario {
	return model.Scenario{
		State: p,
		Eligibility: model.EligibilityThresholds{
			Children: BaselineThresholdFPL,
			Parents:  BaselineThresholdFPL,
			Adults:   BaselineThresholdFPL,
			Elderly:  BaselineThresholdFPL,
			Disabled: BaselineThresholdFPL,
		},
		Work: model.WorkRequirementPolicy{
			Enabled:      false,
			HoursPerWeek: DefaultWorkHours,
			Exemptions: model.WorkExemptions{
				Pregnant:   true,
				Disabled:   true,
				Caregivers: true,
				Students:   false,
			},
		},
		Snap:    model.SnapCostSharingPolicy{},
		Revenue: model.RevenuePolicy{},
	}
}

// Reset returns the baseline for the scenario's current state.
func Reset(s model.Scenario) model.Scenario {
	return Baseline(s.State)
}

func ClampThreshold(v int) int {
	return clampInt(v, MinThresholdFPL, MaxThresholdFPL)
}

// ClampWorkHours snaps v to the nearest allowed option, preferring the
// lower one on ties. Zero means unset and maps to the default.
func ClampWorkHours(v int) int {
	if v == 0 {
		return DefaultWorkHours
	}
	best := AllowedWorkHours[0]
	for _, h := range AllowedWorkHours[1:] {
		if absInt(v-h) < absInt(v-best) {
			best = h
		}
	}
	return best
}

func ClampSharePercent(v int) int {
	return clampInt(v, 0, MaxSnapSharePercent)
}

// ClampTaxIncrease bounds an income or property tax increase.
func ClampTaxIncrease(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > MaxTaxIncrease {
		return MaxTaxIncrease
	}
	return v
}

// QuantizeTaxIncrease clamps v and rounds it to the 0.1 point step of the
// input controls. Records and mutations go through it; Evaluate does not.
func QuantizeTaxIncrease(v float64) float64 {
	return math.Round(ClampTaxIncrease(v)*TaxStepsPerPoint) / TaxStepsPerPoint
}

func ClampSinTaxIncrease(v int) int {
	return clampInt(v, 0, MaxSinTaxIncrease)
}

// ClampProfile zeroes negative or non-finite reference figures.
func ClampProfile(p model.StateProfile) model.StateProfile {
	p.FundingLoss = nonNegative(p.FundingLoss)
	p.Population = nonNegative(p.Population)
	p.MedicaidEnrollment = nonNegative(p.MedicaidEnrollment)
	return p
}

// Clamp returns a copy of s with every lever forced into its range.
func Clamp(s model.Scenario) model.Scenario {
	s.State = ClampProfile(s.State)
	for _, g := range model.Groups {
		v, _ := s.Eligibility.Get(g)
		s.Eligibility = s.Eligibility.With(g, ClampThreshold(v))
	}
	s.Work.HoursPerWeek = ClampWorkHours(s.Work.HoursPerWeek)
	s.Snap.SharePercent = ClampSharePercent(s.Snap.SharePercent)
	s.Revenue.IncomeTaxIncrease = ClampTaxIncrease(s.Revenue.IncomeTaxIncrease)
	s.Revenue.PropertyTaxIncrease = ClampTaxIncrease(s.Revenue.PropertyTaxIncrease)
	s.Revenue.SinTaxIncrease = ClampSinTaxIncrease(s.Revenue.SinTaxIncrease)
	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
