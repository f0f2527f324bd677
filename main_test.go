package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reform-engine/internal/calculator"
	"reform-engine/internal/report"
	"reform-engine/internal/states"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func evaluate(t *testing.T, opts evaluateOptions) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := runEvaluate(&buf, opts, states.Default(), calculator.New(calculator.DefaultCalibration()),
		time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC))
	return buf.String(), err
}

func TestEvaluateJSONFromScenarioFile(t *testing.T) {
	path := writeScenario(t, "state: Texas\nadults_fpl: 100\nsnap_cost_sharing: true\nsnap_share_percent: 10\n")

	out, err := evaluate(t, evaluateOptions{ScenarioFile: path, Format: "json"})
	require.NoError(t, err)

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "2026-01-15T09:00:00Z", doc.GeneratedAt)
	assert.Equal(t, report.Disclaimer, doc.Disclaimer)
	assert.Equal(t, "Texas", doc.Scenario.State)
	assert.Equal(t, 100, doc.Scenario.AdultsFPL)
	assert.Equal(t, 138, doc.Scenario.ChildrenFPL)
	assert.Greater(t, doc.Metrics.SnapCost, 0.0)
}

func TestEvaluateStateFlagOverridesFile(t *testing.T) {
	path := writeScenario(t, "state: Texas\n")

	out, err := evaluate(t, evaluateOptions{State: "ohio", ScenarioFile: path, Format: "json"})
	require.NoError(t, err)

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Ohio", doc.Scenario.State)
}

func TestEvaluateTextDefaultsToCalifornia(t *testing.T) {
	out, err := evaluate(t, evaluateOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, "California")
	assert.Contains(t, out, "Net Budget Impact")
}

func TestEvaluateErrors(t *testing.T) {
	_, err := evaluate(t, evaluateOptions{Format: "xml"})
	assert.Error(t, err)

	_, err = evaluate(t, evaluateOptions{State: "Atlantis"})
	assert.Error(t, err)

	_, err = evaluate(t, evaluateOptions{ScenarioFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	_, err = evaluate(t, evaluateOptions{ScenarioFile: writeScenario(t, "adults_fpl: [1, 2\n")})
	assert.Error(t, err)
}

func TestPrintStates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printStates(&buf, states.Default()))

	out := buf.String()
	assert.Contains(t, out, "STATE")
	assert.Contains(t, out, "California")
	assert.Contains(t, out, "42.3B")
	assert.Contains(t, out, "North Carolina")
}
