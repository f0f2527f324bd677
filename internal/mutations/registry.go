package mutations

import "sort"

const (
	SelectState             = "select_state"
	SetEligibilityThreshold = "set_eligibility_threshold"
	SetWorkRequirements     = "set_work_requirements"
	SetWorkExemption        = "set_work_exemption"
	SetSnapCostSharing      = "set_snap_cost_sharing"
	SetRevenue              = "set_revenue"
	ResetToBaseline         = "reset_to_baseline"
)

var registry = map[string]MutationHandler{
	SelectState:             &SelectStateHandler{},
	SetEligibilityThreshold: &SetEligibilityThresholdHandler{},
	SetWorkRequirements:     &SetWorkRequirementsHandler{},
	SetWorkExemption:        &SetWorkExemptionHandler{},
	SetSnapCostSharing:      &SetSnapCostSharingHandler{},
	SetRevenue:              &SetRevenueHandler{},
	ResetToBaseline:         &ResetToBaselineHandler{},
}

func Get(name string) (MutationHandler, bool) {
	h, ok := registry[name]
	return h, ok
}

// Names lists the registered mutation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
