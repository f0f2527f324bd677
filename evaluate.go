package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"reform-engine/internal/calculator"
	"reform-engine/internal/report"
	"reform-engine/internal/scenario"
	"reform-engine/internal/states"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type evaluateOptions struct {
	State        string
	ScenarioFile string
	Format       string
}

var (
	evalOpts evaluateOptions
	evalOut  string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate one policy scenario",
	Long:  "Loads an optional YAML scenario record over the baseline, evaluates it and prints the summary or the JSON export document.",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, calc, err := loadModel()
		if err != nil {
			return err
		}

		var w io.Writer = os.Stdout
		if evalOut != "" {
			f, err := os.Create(evalOut)
			if err != nil {
				return eris.Wrapf(err, "create %s", evalOut)
			}
			defer f.Close()
			w = f
		}

		return runEvaluate(w, evalOpts, registry, calc, time.Now())
	},
}

func runEvaluate(w io.Writer, opts evaluateOptions, registry *states.Registry, calc *calculator.Calculator, now time.Time) error {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = formatText
	}
	if format != formatText && format != formatJSON {
		return eris.Errorf("unknown format %q (want %s or %s)", opts.Format, formatText, formatJSON)
	}

	rec := scenario.BaselineRecord()
	if opts.ScenarioFile != "" {
		data, err := os.ReadFile(opts.ScenarioFile)
		if err != nil {
			return eris.Wrapf(err, "read scenario %s", opts.ScenarioFile)
		}
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return eris.Wrapf(err, "parse scenario %s", opts.ScenarioFile)
		}
	}
	if name := strings.TrimSpace(opts.State); name != "" {
		rec.State = name
	}
	if rec.State == "" {
		rec.State = states.DefaultState
	}

	profile, ok := registry.Lookup(rec.State)
	if !ok {
		return eris.Errorf("unknown state %q", rec.State)
	}

	s, msgs := scenario.FromRecord(rec, profile)
	for _, m := range msgs {
		zap.L().Warn("scenario input adjusted", zap.String("code", m.Code), zap.String("message", m.Message))
	}
	metrics := calc.Evaluate(s)

	if format == formatJSON {
		return report.WriteJSON(w, report.Export(s, metrics, now))
	}
	return report.Render(w, s, metrics)
}

func init() {
	evaluateCmd.Flags().StringVar(&evalOpts.State, "state", "", "state name (default from the scenario file, else "+states.DefaultState+")")
	evaluateCmd.Flags().StringVar(&evalOpts.ScenarioFile, "scenario", "", "YAML scenario record to apply over the baseline")
	evaluateCmd.Flags().StringVar(&evalOpts.Format, "format", formatText, "output format: text or json")
	evaluateCmd.Flags().StringVar(&evalOut, "out", "", "write output to this file instead of stdout")
	rootCmd.AddCommand(evaluateCmd)
}
