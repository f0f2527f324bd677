package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"reform-engine/internal/states"
)

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List the state reference table",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := states.Load(cfg.States.File)
		if err != nil {
			return err
		}
		return printStates(os.Stdout, registry)
	},
}

func printStates(w io.Writer, registry *states.Registry) error {
	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "%-16s %14s %12s %12s\n", "STATE", "FUNDING LOSS", "POPULATION", "MEDICAID"); err != nil {
		return err
	}
	for _, s := range registry.All() {
		if _, err := p.Fprintf(w, "%-16s %13.1fB %11.1fM %11.1fM\n", s.Name, s.FundingLoss, s.Population, s.MedicaidEnrollment); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(statesCmd)
}
