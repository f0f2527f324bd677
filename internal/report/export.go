package report

import (
	"io"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"reform-engine/internal/model"
	"reform-engine/internal/scenario"
)

// Disclaimer accompanies every rendering of the model's output.
const Disclaimer = "DEMO ONLY — not real data"

// Document is the exported report for one evaluated scenario.
type Document struct {
	GeneratedAt string               `json:"generated_at"`
	Disclaimer  string               `json:"disclaimer"`
	Scenario    model.ScenarioRecord `json:"scenario"`
	Metrics     model.DerivedMetrics `json:"metrics"`
}

func Export(s model.Scenario, m model.DerivedMetrics, at time.Time) Document {
	return Document{
		GeneratedAt: at.UTC().Format(time.RFC3339),
		Disclaimer:  Disclaimer,
		Scenario:    scenario.ToRecord(s),
		Metrics:     m,
	}
}

// WriteJSON encodes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return eris.Wrap(err, "report: encode")
	}
	return nil
}
