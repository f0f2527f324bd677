package mutations

import (
	json "github.com/goccy/go-json"

	"reform-engine/internal/model"
)

// decodeProps unmarshals mutation properties into v. Absent properties
// decode as an empty object.
func decodeProps(mutation *model.Mutation, v interface{}) error {
	if len(mutation.MutationProperties) == 0 {
		return nil
	}
	return json.Unmarshal(mutation.MutationProperties, v)
}

func invalidProps(detail string) []model.CalculationMessage {
	return []model.CalculationMessage{{
		Level:   model.LevelCritical,
		Code:    model.CodeInvalidProperties,
		Message: "Invalid mutation properties: " + detail,
	}}
}
