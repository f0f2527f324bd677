package model

// Group is a demographic eligibility group.
type Group string

const (
	GroupChildren Group = "children"
	GroupParents  Group = "parents"
	GroupAdults   Group = "adults"
	GroupElderly  Group = "elderly"
	GroupDisabled Group = "disabled"
)

// Groups lists every eligibility group in evaluation order.
var Groups = []Group{GroupChildren, GroupParents, GroupAdults, GroupElderly, GroupDisabled}

// Exemption is a category excused from work requirements.
type Exemption string

const (
	ExemptPregnant   Exemption = "pregnant"
	ExemptDisabled   Exemption = "disabled"
	ExemptCaregivers Exemption = "caregivers"
	ExemptStudents   Exemption = "students"
)

var Exemptions = []Exemption{ExemptPregnant, ExemptDisabled, ExemptCaregivers, ExemptStudents}

type StateProfile struct {
	Name               string  `json:"name" yaml:"name"`
	FundingLoss        float64 `json:"funding_loss" yaml:"funding_loss"`               // billions of dollars
	Population         float64 `json:"population" yaml:"population"`                   // millions
	MedicaidEnrollment float64 `json:"medicaid_enrollment" yaml:"medicaid_enrollment"` // millions
}

// EligibilityThresholds holds the income cutoff for each group as a
// percentage of the federal poverty line.
type EligibilityThresholds struct {
	Children int `json:"children"`
	Parents  int `json:"parents"`
	Adults   int `json:"adults"`
	Elderly  int `json:"elderly"`
	Disabled int `json:"disabled"`
}

func (e EligibilityThresholds) Get(g Group) (int, bool) {
	switch g {
	case GroupChildren:
		return e.Children, true
	case GroupParents:
		return e.Parents, true
	case GroupAdults:
		return e.Adults, true
	case GroupElderly:
		return e.Elderly, true
	case GroupDisabled:
		return e.Disabled, true
	}
	return 0, false
}

// With returns a copy with the threshold for g replaced. Unknown groups
// leave the copy unchanged.
func (e EligibilityThresholds) With(g Group, v int) EligibilityThresholds {
	switch g {
	case GroupChildren:
		e.Children = v
	case GroupParents:
		e.Parents = v
	case GroupAdults:
		e.Adults = v
	case GroupElderly:
		e.Elderly = v
	case GroupDisabled:
		e.Disabled = v
	}
	return e
}

type WorkExemptions struct {
	Pregnant   bool `json:"pregnant"`
	Disabled   bool `json:"disabled"`
	Caregivers bool `json:"caregivers"`
	Students   bool `json:"students"`
}

func (w WorkExemptions) Get(x Exemption) (bool, bool) {
	switch x {
	case ExemptPregnant:
		return w.Pregnant, true
	case ExemptDisabled:
		return w.Disabled, true
	case ExemptCaregivers:
		return w.Caregivers, true
	case ExemptStudents:
		return w.Students, true
	}
	return false, false
}

func (w WorkExemptions) With(x Exemption, v bool) WorkExemptions {
	switch x {
	case ExemptPregnant:
		w.Pregnant = v
	case ExemptDisabled:
		w.Disabled = v
	case ExemptCaregivers:
		w.Caregivers = v
	case ExemptStudents:
		w.Students = v
	}
	return w
}

type WorkRequirementPolicy struct {
	Enabled      bool           `json:"enabled"`
	HoursPerWeek int            `json:"hours_per_week"`
	Exemptions   WorkExemptions `json:"exemptions"`
}

type SnapCostSharingPolicy struct {
	Enabled      bool `json:"enabled"`
	SharePercent int  `json:"share_percent"`
}

type RevenuePolicy struct {
	IncomeTaxIncrease   float64 `json:"income_tax_increase"`
	PropertyTaxIncrease float64 `json:"property_tax_increase"`
	SinTaxIncrease      int     `json:"sin_tax_increase"`
}

// Scenario is one complete set of policy levers for a state. It is a plain
// value: the With* methods return modified copies and never touch the
// receiver.
type Scenario struct {
	State       StateProfile          `json:"state"`
	Eligibility EligibilityThresholds `json:"eligibility"`
	Work        WorkRequirementPolicy `json:"work"`
	Snap        SnapCostSharingPolicy `json:"snap"`
	Revenue     RevenuePolicy         `json:"revenue"`
}

func (s Scenario) WithState(p StateProfile) Scenario {
	s.State = p
	return s
}

func (s Scenario) WithThreshold(g Group, v int) Scenario {
	s.Eligibility = s.Eligibility.With(g, v)
	return s
}

func (s Scenario) WithWork(w WorkRequirementPolicy) Scenario {
	s.Work = w
	return s
}

func (s Scenario) WithSnap(p SnapCostSharingPolicy) Scenario {
	s.Snap = p
	return s
}

func (s Scenario) WithRevenue(r RevenuePolicy) Scenario {
	s.Revenue = r
	return s
}
