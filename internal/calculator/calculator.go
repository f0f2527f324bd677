package calculator

import (
	"math"

	"reform-engine/internal/model"
	"reform-engine/internal/scenario"
)

// Calculator projects scenarios into derived fiscal metrics. It holds only
// its calibration and is safe for concurrent use.
type Calculator struct {
	cal Calibration
}

var defaultCalculator = New(DefaultCalibration())

// New builds a calculator. A non-positive baseline threshold is replaced by
// the default so the relative-reduction division is always defined, and a
// zero base year means the default one.
func New(cal Calibration) *Calculator {
	if !(cal.BaselineThreshold > 0) {
		cal.BaselineThreshold = BaselineThresholdFPL
	}
	if cal.TrajectoryBaseYear == 0 {
		cal.TrajectoryBaseYear = TrajectoryBaseYear
	}
	return &Calculator{cal: cal}
}

// Evaluate projects s with the default calibration.
func Evaluate(s model.Scenario) model.DerivedMetrics {
	return defaultCalculator.Evaluate(s)
}

func (c *Calculator) Calibration() Calibration {
	return c.cal
}

// Evaluate is pure: the same scenario always yields the same metrics.
// Out-of-range levers are clamped first.
func (c *Calculator) Evaluate(s model.Scenario) model.DerivedMetrics {
	s = scenario.Clamp(s)
	cal := c.cal
	loss := s.State.FundingLoss

	// Eligibility
	var totalEligibilityReduction float64
	for _, g := range model.Groups {
		threshold, _ := s.Eligibility.Get(g)
		reduction := math.Max(0, (cal.BaselineThreshold-float64(threshold))/cal.BaselineThreshold)
		totalEligibilityReduction += reduction * c.weight(g)
	}
	enrollmentReduction := totalEligibilityReduction * cal.EnrollmentResponseFactor
	eligibilitySavings := loss * enrollmentReduction * cal.SavingsCaptureRate

	// Work requirements
	var workReqReduction, workReqAdminCost, workReqSavings float64
	if s.Work.Enabled {
		workReqReduction = cal.WorkRequirementDisenrollment
		workReqAdminCost = cal.WorkRequirementAdminCost
		workReqSavings = loss*workReqReduction*cal.SavingsCaptureRate - workReqAdminCost
	}

	// SNAP cost sharing is a new state cost, not a saving.
	var snapCost float64
	if s.Snap.Enabled {
		snapCost = loss * cal.SnapBenefitShare * (float64(s.Snap.SharePercent) / 100)
	}

	// Revenue
	pop := s.State.Population
	incomeRevenue := s.Revenue.IncomeTaxIncrease * pop * cal.IncomeTaxYield
	propertyRevenue := s.Revenue.PropertyTaxIncrease * pop * cal.PropertyTaxYield
	sinRevenue := float64(s.Revenue.SinTaxIncrease) * pop * cal.SinTaxYield
	totalRevenue := incomeRevenue + propertyRevenue + sinRevenue

	totalSavings := eligibilitySavings + workReqSavings
	netBudgetImpact := -loss + totalSavings + totalRevenue - snapCost

	// People affected. The two groups are summed without removing people
	// hit by both levers, so the total overstates when both are active.
	enrollment := s.State.MedicaidEnrollment
	eligibilityAffected := enrollment * enrollmentReduction * PeoplePerMillion
	workReqAffected := enrollment * workReqReduction * PeoplePerMillion

	return model.DerivedMetrics{
		State:                     s.State.Name,
		TotalEligibilityReduction: totalEligibilityReduction,
		EnrollmentReduction:       enrollmentReduction,
		EligibilitySavings:        eligibilitySavings,
		WorkReqReduction:          workReqReduction,
		WorkReqAdminCost:          workReqAdminCost,
		WorkReqSavings:            workReqSavings,
		SnapCost:                  snapCost,
		IncomeRevenue:             incomeRevenue,
		PropertyRevenue:           propertyRevenue,
		SinRevenue:                sinRevenue,
		TotalRevenue:              totalRevenue,
		TotalSavings:              totalSavings,
		NetBudgetImpact:           netBudgetImpact,
		CoverageReduction:         enrollmentReduction + workReqReduction,
		EligibilityAffected:       eligibilityAffected,
		WorkReqAffected:           workReqAffected,
		TotalAffected:             eligibilityAffected + workReqAffected,
		FundingBreakdown:          fundingBreakdown(loss, totalSavings, totalRevenue, s.Snap.Enabled, snapCost),
		Enrollment: []model.EnrollmentBar{
			{Name: model.BarCurrent, Enrollment: enrollment},
			{Name: model.BarProjected, Enrollment: enrollment * (1 - enrollmentReduction - workReqReduction)},
		},
		Trajectory: c.trajectory(loss, totalSavings+totalRevenue, snapCost),
	}
}

func (c *Calculator) weight(g model.Group) float64 {
	w := c.cal.GroupWeights
	switch g {
	case model.GroupChildren:
		return w.Children
	case model.GroupParents:
		return w.Parents
	case model.GroupAdults:
		return w.Adults
	case model.GroupElderly:
		return w.Elderly
	case model.GroupDisabled:
		return w.Disabled
	}
	return 0
}

// fundingBreakdown keeps only strictly positive slices.
func fundingBreakdown(loss, savings, revenue float64, snapEnabled bool, snapCost float64) []model.FundingSlice {
	slices := []model.FundingSlice{
		{Name: model.SliceFederalLoss, Value: math.Max(0, loss-savings)},
		{Name: model.SliceStateRevenue, Value: revenue},
		{Name: model.SliceProgramSavings, Value: savings},
	}
	if snapEnabled && snapCost > 0 {
		slices = append(slices, model.FundingSlice{Name: model.SliceSnapCosts, Value: snapCost})
	}

	out := slices[:0]
	for _, sl := range slices {
		if sl.Value > 0 {
			out = append(out, sl)
		}
	}
	return out
}

// trajectory offsets grow at the annual rate from the base year; the
// baseline loss does not.
func (c *Calculator) trajectory(loss, offsets, snapCost float64) []model.TrajectoryPoint {
	points := make([]model.TrajectoryPoint, TrajectoryPoints)
	for i := range points {
		growth := 1 + c.cal.AnnualGrowthRate*float64(i)
		points[i] = model.TrajectoryPoint{
			Year:    c.cal.TrajectoryBaseYear + i,
			Deficit: -loss + offsets*growth - snapCost*growth,
		}
	}
	return points
}
