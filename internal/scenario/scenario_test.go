package scenario

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reform-engine/internal/model"
)

var california = model.StateProfile{Name: "California", FundingLoss: 42.3, Population: 39.5, MedicaidEnrollment: 14.2}

func TestBaseline(t *testing.T) {
	s := Baseline(california)

	assert.Equal(t, california, s.State)
	for _, g := range model.Groups {
		v, ok := s.Eligibility.Get(g)
		require.True(t, ok)
		assert.Equal(t, BaselineThresholdFPL, v, string(g))
	}
	assert.False(t, s.Work.Enabled)
	assert.Equal(t, 20, s.Work.HoursPerWeek)
	assert.Equal(t, model.WorkExemptions{Pregnant: true, Disabled: true, Caregivers: true}, s.Work.Exemptions)
	assert.Equal(t, model.SnapCostSharingPolicy{}, s.Snap)
	assert.Equal(t, model.RevenuePolicy{}, s.Revenue)
}

func TestResetKeepsState(t *testing.T) {
	s := Baseline(california).
		WithThreshold(model.GroupAdults, 50).
		WithSnap(model.SnapCostSharingPolicy{Enabled: true, SharePercent: 10})

	r := Reset(s)
	assert.Equal(t, Baseline(california), r)
	assert.Equal(t, 50, s.Eligibility.Adults, "reset must not touch the original")
}

func TestClampHelpers(t *testing.T) {
	assert.Equal(t, 0, ClampThreshold(-10))
	assert.Equal(t, 200, ClampThreshold(250))
	assert.Equal(t, 100, ClampThreshold(100))

	assert.Equal(t, 20, ClampWorkHours(0))
	assert.Equal(t, 20, ClampWorkHours(10))
	assert.Equal(t, 20, ClampWorkHours(25))
	assert.Equal(t, 30, ClampWorkHours(31))
	assert.Equal(t, 35, ClampWorkHours(33))
	assert.Equal(t, 35, ClampWorkHours(60))

	assert.Equal(t, 0, ClampSharePercent(-1))
	assert.Equal(t, 30, ClampSharePercent(90))

	assert.InDelta(t, 0, ClampTaxIncrease(math.NaN()), 1e-12)
	assert.InDelta(t, 0, ClampTaxIncrease(-2), 1e-12)
	assert.InDelta(t, 5, ClampTaxIncrease(7.5), 1e-12)
	assert.InDelta(t, 1.23, ClampTaxIncrease(1.23), 1e-12)
	assert.InDelta(t, 1.2, QuantizeTaxIncrease(1.23), 1e-9)
	assert.InDelta(t, 5, QuantizeTaxIncrease(9), 1e-12)
	assert.InDelta(t, 0, QuantizeTaxIncrease(math.Inf(-1)), 1e-12)

	assert.Equal(t, 100, ClampSinTaxIncrease(150))

	p := ClampProfile(model.StateProfile{Name: "X", FundingLoss: -1, Population: math.NaN(), MedicaidEnrollment: 2})
	assert.Equal(t, model.StateProfile{Name: "X", MedicaidEnrollment: 2}, p)
}

func TestRecordRoundTrip(t *testing.T) {
	s := Baseline(california).
		WithThreshold(model.GroupChildren, 100).
		WithWork(model.WorkRequirementPolicy{Enabled: true, HoursPerWeek: 30, Exemptions: model.WorkExemptions{Students: true}}).
		WithRevenue(model.RevenuePolicy{IncomeTaxIncrease: 1.5, SinTaxIncrease: 40})

	rec := ToRecord(s)
	assert.Equal(t, "California", rec.State)
	assert.Equal(t, 100, rec.ChildrenFPL)
	assert.Equal(t, 30, rec.WorkHoursPerWeek)

	back, msgs := FromRecord(rec, california)
	assert.Empty(t, msgs)
	assert.Equal(t, s, back)
}

func TestBaselineRecord(t *testing.T) {
	rec := BaselineRecord()
	assert.Equal(t, "", rec.State)
	assert.Equal(t, 138, rec.ElderlyFPL)
	assert.Equal(t, 20, rec.WorkHoursPerWeek)
	assert.True(t, rec.ExemptCaregivers)
	assert.False(t, rec.ExemptStudents)
}

func TestFromRecordQuantizesTaxIncreases(t *testing.T) {
	rec := BaselineRecord()
	rec.IncomeTaxIncrease = 1.26
	rec.PropertyTaxIncrease = 0.04

	s, msgs := FromRecord(rec, california)

	assert.Empty(t, msgs)
	assert.InDelta(t, 1.3, s.Revenue.IncomeTaxIncrease, 1e-9)
	assert.InDelta(t, 0, s.Revenue.PropertyTaxIncrease, 1e-12)
}

func TestClampProfileInfinite(t *testing.T) {
	p := ClampProfile(model.StateProfile{Name: "X", FundingLoss: math.Inf(1), Population: math.Inf(-1), MedicaidEnrollment: 2})
	assert.Equal(t, 0.0, p.FundingLoss)
	assert.Equal(t, 0.0, p.Population)
	assert.Equal(t, 2.0, p.MedicaidEnrollment)
}

func TestFromRecordClampsWithWarnings(t *testing.T) {
	rec := BaselineRecord()
	rec.ChildrenFPL = 250
	rec.SnapSharePercent = 45
	rec.WorkHoursPerWeek = 25
	rec.IncomeTaxIncrease = -1

	s, msgs := FromRecord(rec, california)

	assert.Equal(t, 200, s.Eligibility.Children)
	assert.Equal(t, 30, s.Snap.SharePercent)
	assert.Equal(t, 20, s.Work.HoursPerWeek)
	assert.InDelta(t, 0, s.Revenue.IncomeTaxIncrease, 1e-12)

	require.Len(t, msgs, 4)
	fields := map[string]bool{}
	for _, m := range msgs {
		assert.Equal(t, model.LevelWarning, m.Level)
		assert.Equal(t, model.CodeValueClamped, m.Code)
		fields[firstWord(m.Message)] = true
	}
	assert.True(t, fields["children_fpl"])
	assert.True(t, fields["snap_share_percent"])
	assert.True(t, fields["work_hours_per_week"])
	assert.True(t, fields["income_tax_increase"])
}

func firstWord(s string) string {
	for i, r := range s {
		if r == ' ' {
			return s[:i]
		}
	}
	return s
}
