package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeUnknownMutation   = "UNKNOWN_MUTATION"
	CodeUnknownState      = "UNKNOWN_STATE"
	CodeUnknownGroup      = "UNKNOWN_GROUP"
	CodeUnknownExemption  = "UNKNOWN_EXEMPTION"
	CodeInvalidProperties = "INVALID_PROPERTIES"
	CodeValueClamped      = "VALUE_CLAMPED"
)
