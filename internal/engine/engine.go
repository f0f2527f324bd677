package engine

import (
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"reform-engine/internal/calculator"
	"reform-engine/internal/jsonpatch"
	"reform-engine/internal/model"
	"reform-engine/internal/mutations"
	"reform-engine/internal/observability"
	"reform-engine/internal/scenario"
	"reform-engine/internal/states"
)

// Engine turns calculation requests into evaluated scenarios. It keeps no
// per-request state and is safe for concurrent use.
type Engine struct {
	calc    *calculator.Calculator
	env     *mutations.Env
	metrics *observability.Collector
}

// New builds an engine. Nil calc or registry fall back to the default
// calibration and the built-in state table; metrics may be nil.
func New(calc *calculator.Calculator, registry *states.Registry, metrics *observability.Collector) *Engine {
	if calc == nil {
		calc = calculator.New(calculator.DefaultCalibration())
	}
	if registry == nil {
		registry = states.Default()
	}
	return &Engine{
		calc:    calc,
		env:     &mutations.Env{States: registry},
		metrics: metrics,
	}
}

func (e *Engine) States() *states.Registry {
	return e.env.States
}

func (e *Engine) Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	var allMessages []model.CalculationMessage
	var processedMutations []model.ProcessedMutation
	outcome := model.OutcomeSuccess

	addMessages := func(msgs []model.CalculationMessage) (indexes []int, critical bool) {
		for _, m := range msgs {
			m.ID = len(allMessages)
			allMessages = append(allMessages, m)
			indexes = append(indexes, m.ID)
			if m.Level == model.LevelCritical {
				critical = true
			}
		}
		return indexes, critical
	}

	initial, initMsgs, ok := e.initialScenario(req)
	_, hasCritical := addMessages(initMsgs)
	if !ok || hasCritical {
		return e.finish(req, start, model.OutcomeFailure, allMessages, nil, nil, nil, nil)
	}

	current := initial
	for _, mut := range req.CalculationInstructions.Mutations {
		handler, found := mutations.Get(mut.MutationDefinitionName)
		if !found {
			idx, _ := addMessages([]model.CalculationMessage{{
				Level:   model.LevelCritical,
				Code:    model.CodeUnknownMutation,
				Message: fmt.Sprintf("Unknown mutation: %s (known: %s)", mut.MutationDefinitionName, strings.Join(mutations.Names(), ", ")),
			}})
			processedMutations = append(processedMutations, model.ProcessedMutation{
				Mutation:                  mut,
				CalculationMessageIndexes: idx,
			})
			outcome = model.OutcomeFailure
			break
		}

		// Validate
		msgIndexes, critical := addMessages(handler.Validate(e.env, current, &mut))
		if critical {
			outcome = model.OutcomeFailure
			processedMutations = append(processedMutations, model.ProcessedMutation{
				Mutation:                  mut,
				CalculationMessageIndexes: msgIndexes,
			})
			break
		}

		// Apply: the scenario is replaced only when the mutation succeeds.
		next, applyMsgs := handler.Apply(e.env, current, &mut)
		applyIndexes, critical := addMessages(applyMsgs)
		msgIndexes = append(msgIndexes, applyIndexes...)

		processedMutations = append(processedMutations, model.ProcessedMutation{
			Mutation:                  mut,
			CalculationMessageIndexes: msgIndexes,
		})

		if critical {
			outcome = model.OutcomeFailure
			break
		}
		current = next
	}

	// Metrics always describe the last scenario that was fully applied.
	metrics := e.calc.Evaluate(current)
	e.metrics.ObserveNetImpact(metrics.State, metrics.NetBudgetImpact)

	return e.finish(req, start, outcome, allMessages, processedMutations, &initial, &current, &metrics)
}

// initialScenario overlays the request's partial record on the baseline
// record and resolves the state. The request's state takes precedence over
// the record's; with neither, the default state is used.
func (e *Engine) initialScenario(req *model.CalculationRequest) (model.Scenario, []model.CalculationMessage, bool) {
	rec := scenario.BaselineRecord()
	if len(req.Scenario) > 0 {
		if err := json.Unmarshal(req.Scenario, &rec); err != nil {
			return model.Scenario{}, []model.CalculationMessage{{
				Level:   model.LevelCritical,
				Code:    model.CodeInvalidProperties,
				Message: "Invalid scenario record: " + err.Error(),
			}}, false
		}
	}

	name := strings.TrimSpace(req.State)
	if name == "" {
		name = rec.State
	}
	if name == "" {
		name = states.DefaultState
	}
	profile, ok := e.env.States.Lookup(name)
	if !ok {
		return model.Scenario{}, []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeUnknownState,
			Message: "Unknown state: " + name,
		}}, false
	}

	s, msgs := scenario.FromRecord(rec, profile)
	return s, msgs, true
}

func (e *Engine) finish(
	req *model.CalculationRequest,
	start time.Time,
	outcome string,
	messages []model.CalculationMessage,
	processed []model.ProcessedMutation,
	initial, end *model.Scenario,
	metrics *model.DerivedMetrics,
) *model.CalculationResponse {
	if messages == nil {
		messages = []model.CalculationMessage{}
	}
	if processed == nil {
		processed = []model.ProcessedMutation{}
	}

	result := model.CalculationResult{
		Messages:  messages,
		Mutations: processed,
		Metrics:   metrics,
		Changes:   []model.PatchOp{},
		Revert:    []model.PatchOp{},
	}

	if initial != nil && end != nil {
		rec := scenario.ToRecord(*end)
		result.Scenario = &rec

		// Diff against the baseline of the starting state so a select_state
		// mutation shows up as a change.
		baseline := scenario.ToRecord(scenario.Baseline(initial.State))
		fwd, bwd := jsonpatch.DiffBoth(toDocument(baseline), toDocument(rec), "")
		if fwd != nil {
			result.Changes = fwd
		}
		if bwd != nil {
			result.Revert = bwd
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()
	e.metrics.ObserveCalculation(outcome, elapsed)

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			Label:                  req.Label,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: result,
	}
}

func toDocument(rec model.ScenarioRecord) interface{} {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return doc
}
