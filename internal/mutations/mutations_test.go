package mutations

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reform-engine/internal/model"
	"reform-engine/internal/scenario"
	"reform-engine/internal/states"
)

func testEnv() *Env {
	return &Env{States: states.Default()}
}

func baseline(t *testing.T) model.Scenario {
	t.Helper()
	p, ok := states.Default().Lookup("California")
	require.True(t, ok)
	return scenario.Baseline(p)
}

func mutation(name, props string) *model.Mutation {
	return &model.Mutation{
		MutationID:             "m-1",
		MutationDefinitionName: name,
		MutationProperties:     json.RawMessage(props),
	}
}

func run(t *testing.T, s model.Scenario, m *model.Mutation) (model.Scenario, []model.CalculationMessage, []model.CalculationMessage) {
	t.Helper()
	h, ok := Get(m.MutationDefinitionName)
	require.True(t, ok, m.MutationDefinitionName)
	env := testEnv()
	vmsgs := h.Validate(env, s, m)
	if len(vmsgs) > 0 {
		return s, vmsgs, nil
	}
	out, amsgs := h.Apply(env, s, m)
	return out, nil, amsgs
}

func TestRegistryNames(t *testing.T) {
	assert.Equal(t, []string{
		ResetToBaseline,
		SelectState,
		SetEligibilityThreshold,
		SetRevenue,
		SetSnapCostSharing,
		SetWorkExemption,
		SetWorkRequirements,
	}, Names())

	_, ok := Get("raise_minimum_wage")
	assert.False(t, ok)
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	s := baseline(t)
	before := s

	out, vmsgs, amsgs := run(t, s, mutation(SetEligibilityThreshold, `{"group":"adults","threshold":60}`))
	assert.Empty(t, vmsgs)
	assert.Empty(t, amsgs)
	assert.Equal(t, 60, out.Eligibility.Adults)
	assert.Equal(t, before, s)
}

func TestSelectState(t *testing.T) {
	s := baseline(t).WithThreshold(model.GroupChildren, 10)

	out, vmsgs, _ := run(t, s, mutation(SelectState, `{"state":"Ohio"}`))
	require.Empty(t, vmsgs)
	assert.Equal(t, "Ohio", out.State.Name)
	assert.Equal(t, 10, out.Eligibility.Children, "levers survive a state change")

	_, vmsgs, _ = run(t, s, mutation(SelectState, `{"state":"Atlantis"}`))
	require.Len(t, vmsgs, 1)
	assert.Equal(t, model.CodeUnknownState, vmsgs[0].Code)
	assert.Equal(t, model.LevelCritical, vmsgs[0].Level)
}

func TestSetEligibilityThreshold(t *testing.T) {
	s := baseline(t)

	out, _, amsgs := run(t, s, mutation(SetEligibilityThreshold, `{"group":"elderly","threshold":240}`))
	assert.Equal(t, 200, out.Eligibility.Elderly)
	require.Len(t, amsgs, 1)
	assert.Equal(t, model.CodeValueClamped, amsgs[0].Code)
	assert.Equal(t, model.LevelWarning, amsgs[0].Level)

	_, vmsgs, _ := run(t, s, mutation(SetEligibilityThreshold, `{"group":"pets","threshold":10}`))
	require.Len(t, vmsgs, 1)
	assert.Equal(t, model.CodeUnknownGroup, vmsgs[0].Code)

	_, vmsgs, _ = run(t, s, mutation(SetEligibilityThreshold, `{"group":"adults"}`))
	require.Len(t, vmsgs, 1)
	assert.Equal(t, model.CodeInvalidProperties, vmsgs[0].Code)

	_, vmsgs, _ = run(t, s, mutation(SetEligibilityThreshold, `{"group":`))
	require.Len(t, vmsgs, 1)
	assert.Equal(t, model.CodeInvalidProperties, vmsgs[0].Code)
}

func TestSetWorkRequirements(t *testing.T) {
	s := baseline(t)

	out, _, amsgs := run(t, s, mutation(SetWorkRequirements, `{"enabled":true}`))
	assert.Empty(t, amsgs)
	assert.True(t, out.Work.Enabled)
	assert.Equal(t, 20, out.Work.HoursPerWeek)

	out, _, amsgs = run(t, out, mutation(SetWorkRequirements, `{"hours_per_week":35}`))
	assert.Empty(t, amsgs)
	assert.True(t, out.Work.Enabled)
	assert.Equal(t, 35, out.Work.HoursPerWeek)

	out, _, amsgs = run(t, out, mutation(SetWorkRequirements, `{"hours_per_week":28}`))
	require.Len(t, amsgs, 1)
	assert.Equal(t, model.CodeValueClamped, amsgs[0].Code)
	assert.Equal(t, 30, out.Work.HoursPerWeek)

	_, vmsgs, _ := run(t, s, mutation(SetWorkRequirements, `{}`))
	require.Len(t, vmsgs, 1)
	assert.Equal(t, model.CodeInvalidProperties, vmsgs[0].Code)
}

func TestSetWorkExemption(t *testing.T) {
	s := baseline(t)

	out, vmsgs, _ := run(t, s, mutation(SetWorkExemption, `{"exemption":"students","exempt":true}`))
	require.Empty(t, vmsgs)
	assert.True(t, out.Work.Exemptions.Students)
	assert.True(t, out.Work.Exemptions.Pregnant)

	_, vmsgs, _ = run(t, s, mutation(SetWorkExemption, `{"exemption":"veterans","exempt":true}`))
	require.Len(t, vmsgs, 1)
	assert.Equal(t, model.CodeUnknownExemption, vmsgs[0].Code)
}

func TestSetSnapCostSharing(t *testing.T) {
	s := baseline(t)

	out, _, amsgs := run(t, s, mutation(SetSnapCostSharing, `{"enabled":true,"share_percent":45}`))
	require.Len(t, amsgs, 1)
	assert.True(t, out.Snap.Enabled)
	assert.Equal(t, 30, out.Snap.SharePercent)

	out, _, amsgs = run(t, out, mutation(SetSnapCostSharing, `{"enabled":false}`))
	assert.Empty(t, amsgs)
	assert.False(t, out.Snap.Enabled)
	assert.Equal(t, 30, out.Snap.SharePercent)
}

func TestSetRevenue(t *testing.T) {
	s := baseline(t)

	out, _, amsgs := run(t, s, mutation(SetRevenue, `{"income_tax_increase":1.26,"sin_tax_increase":40}`))
	assert.Empty(t, amsgs)
	assert.InDelta(t, 1.3, out.Revenue.IncomeTaxIncrease, 1e-9)
	assert.InDelta(t, 0, out.Revenue.PropertyTaxIncrease, 1e-9)
	assert.Equal(t, 40, out.Revenue.SinTaxIncrease)

	out, _, amsgs = run(t, out, mutation(SetRevenue, `{"property_tax_increase":9,"sin_tax_increase":-5}`))
	assert.Len(t, amsgs, 2)
	assert.InDelta(t, 5, out.Revenue.PropertyTaxIncrease, 1e-9)
	assert.Equal(t, 0, out.Revenue.SinTaxIncrease)
	assert.InDelta(t, 1.3, out.Revenue.IncomeTaxIncrease, 1e-9)
}

func TestResetToBaseline(t *testing.T) {
	s := baseline(t).
		WithThreshold(model.GroupParents, 0).
		WithSnap(model.SnapCostSharingPolicy{Enabled: true, SharePercent: 20})

	out, vmsgs, amsgs := run(t, s, &model.Mutation{MutationDefinitionName: ResetToBaseline})
	assert.Empty(t, vmsgs)
	assert.Empty(t, amsgs)
	assert.Equal(t, baseline(t), out)
}
