package scenario

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"reform-engine/internal/model"
)

var recordValidate = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New()
	// Report json field names so messages match what callers sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// BaselineRecord is the flat form of the baseline levers with no state.
// Decode partial documents on top of it so omitted fields stay at baseline.
func BaselineRecord() model.ScenarioRecord {
	return ToRecord(Baseline(model.StateProfile{}))
}

func ToRecord(s model.Scenario) model.ScenarioRecord {
	return model.ScenarioRecord{
		State:               s.State.Name,
		ChildrenFPL:         s.Eligibility.Children,
		ParentsFPL:          s.Eligibility.Parents,
		AdultsFPL:           s.Eligibility.Adults,
		ElderlyFPL:          s.Eligibility.Elderly,
		DisabledFPL:         s.Eligibility.Disabled,
		WorkRequirements:    s.Work.Enabled,
		WorkHoursPerWeek:    s.Work.HoursPerWeek,
		ExemptPregnant:      s.Work.Exemptions.Pregnant,
		ExemptDisabled:      s.Work.Exemptions.Disabled,
		ExemptCaregivers:    s.Work.Exemptions.Caregivers,
		ExemptStudents:      s.Work.Exemptions.Students,
		SnapCostSharing:     s.Snap.Enabled,
		SnapSharePercent:    s.Snap.SharePercent,
		IncomeTaxIncrease:   s.Revenue.IncomeTaxIncrease,
		PropertyTaxIncrease: s.Revenue.PropertyTaxIncrease,
		SinTaxIncrease:      s.Revenue.SinTaxIncrease,
	}
}

// FromRecord builds a scenario for profile from a flat record. Every
// out-of-range field yields a VALUE_CLAMPED warning and is clamped; the
// record's state name is ignored in favour of profile.
func FromRecord(rec model.ScenarioRecord, profile model.StateProfile) (model.Scenario, []model.CalculationMessage) {
	var msgs []model.CalculationMessage

	if err := recordValidate.Struct(rec); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				msgs = append(msgs, ClampedMessage(fe.Field(), fe.Value()))
			}
		}
	}

	s := model.Scenario{
		State: profile,
		Eligibility: model.EligibilityThresholds{
			Children: rec.ChildrenFPL,
			Parents:  rec.ParentsFPL,
			Adults:   rec.AdultsFPL,
			Elderly:  rec.ElderlyFPL,
			Disabled: rec.DisabledFPL,
		},
		Work: model.WorkRequirementPolicy{
			Enabled:      rec.WorkRequirements,
			HoursPerWeek: rec.WorkHoursPerWeek,
			Exemptions: model.WorkExemptions{
				Pregnant:   rec.ExemptPregnant,
				Disabled:   rec.ExemptDisabled,
				Caregivers: rec.ExemptCaregivers,
				Students:   rec.ExemptStudents,
			},
		},
		Snap: model.SnapCostSharingPolicy{
			Enabled:      rec.SnapCostSharing,
			SharePercent: rec.SnapSharePercent,
		},
		Revenue: model.RevenuePolicy{
			IncomeTaxIncrease:   QuantizeTaxIncrease(rec.IncomeTaxIncrease),
			PropertyTaxIncrease: QuantizeTaxIncrease(rec.PropertyTaxIncrease),
			SinTaxIncrease:      rec.SinTaxIncrease,
		},
	}

	return Clamp(s), msgs
}

// ClampedMessage is the warning emitted when an input is forced into range.
func ClampedMessage(field string, value interface{}) model.CalculationMessage {
	return model.CalculationMessage{
		Level:   model.LevelWarning,
		Code:    model.CodeValueClamped,
		Message: fmt.Sprintf("%s value %v is out of range and was clamped", field, value),
	}
}
