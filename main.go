package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"reform-engine/internal/calculator"
	"reform-engine/internal/config"
	"reform-engine/internal/states"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:          "reform-engine",
	Short:        "Medicaid and SNAP policy impact calculator",
	Long:         "Evaluates state policy scenarios (eligibility cuts, work requirements, SNAP cost sharing, tax increases) against projected federal funding losses.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// loadModel builds the state table and calculator described by cfg.
func loadModel() (*states.Registry, *calculator.Calculator, error) {
	registry, err := states.Load(cfg.States.File)
	if err != nil {
		return nil, nil, err
	}
	return registry, calculator.New(cfg.Model), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
