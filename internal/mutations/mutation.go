package mutations

import (
	"reform-engine/internal/model"
	"reform-engine/internal/states"
)

// Env carries the read-only collaborators a mutation may consult.
type Env struct {
	States *states.Registry
}

// MutationHandler defines the contract for all lever mutations.
// Validate checks the mutation against the current scenario; Apply returns
// the changed copy and never modifies its input.
type MutationHandler interface {
	Validate(env *Env, s model.Scenario, mutation *model.Mutation) []model.CalculationMessage
	Apply(env *Env, s model.Scenario, mutation *model.Mutation) (model.Scenario, []model.CalculationMessage)
}
