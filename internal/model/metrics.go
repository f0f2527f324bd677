package model

// DerivedMetrics is the full projection of one Scenario. Money is in
// billions of dollars, enrollment in millions, people as head counts.
type DerivedMetrics struct {
	State string `json:"state"`

	TotalEligibilityReduction float64 `json:"total_eligibility_reduction"`
	EnrollmentReduction       float64 `json:"enrollment_reduction"`
	EligibilitySavings        float64 `json:"eligibility_savings"`

	WorkReqReduction float64 `json:"work_req_reduction"`
	WorkReqAdminCost float64 `json:"work_req_admin_cost"`
	WorkReqSavings   float64 `json:"work_req_savings"`

	SnapCost float64 `json:"snap_cost"`

	IncomeRevenue   float64 `json:"income_revenue"`
	PropertyRevenue float64 `json:"property_revenue"`
	SinRevenue      float64 `json:"sin_revenue"`
	TotalRevenue    float64 `json:"total_revenue"`

	TotalSavings      float64 `json:"total_savings"`
	NetBudgetImpact   float64 `json:"net_budget_impact"`
	CoverageReduction float64 `json:"coverage_reduction"`

	EligibilityAffected float64 `json:"eligibility_affected"`
	WorkReqAffected     float64 `json:"work_req_affected"`
	TotalAffected       float64 `json:"total_affected"`

	FundingBreakdown []FundingSlice    `json:"funding_breakdown"`
	Enrollment       []EnrollmentBar   `json:"enrollment"`
	Trajectory       []TrajectoryPoint `json:"trajectory"`
}

type FundingSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type EnrollmentBar struct {
	Name       string  `json:"name"`
	Enrollment float64 `json:"enrollment"`
}

type TrajectoryPoint struct {
	Year    int     `json:"year"`
	Deficit float64 `json:"deficit"`
}

const (
	SliceFederalLoss    = "Federal Loss"
	SliceStateRevenue   = "State Revenue"
	SliceProgramSavings = "Program Savings"
	SliceSnapCosts      = "SNAP Costs"

	BarCurrent   = "Current"
	BarProjected = "Projected"
)
