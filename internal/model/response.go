package model

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	Label                  string `json:"label"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages  []CalculationMessage `json:"messages"`
	Mutations []ProcessedMutation  `json:"mutations"`
	Scenario  *ScenarioRecord      `json:"scenario"`
	Metrics   *DerivedMetrics      `json:"metrics"`
	Changes   []PatchOp            `json:"changes"`
	Revert    []PatchOp            `json:"revert"`
}

type ProcessedMutation struct {
	Mutation                  Mutation `json:"mutation"`
	CalculationMessageIndexes []int    `json:"calculation_message_indexes,omitempty"`
}

// PatchOp is one RFC 6902 operation.
type PatchOp = map[string]interface{}

type StatesResponse struct {
	States []StateProfile `json:"states"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
