package cmd

import (
	"github.com/KaramelBytes/domainlens-cli/internal/engine"
	"github.com/KaramelBytes/domainlens-cli/internal/session"
	"github.com/spf13/cobra"
)

type demoDataset struct {
	name   string
	values []float64
	mode   engine.Mode
}

var demoDatasets = []demoDataset{
	{"student_ahmed", []float64{85, 88, 90, 92}, engine.Education},
	{"company_budget", []float64{50000, 55000, 60000, 65000}, engine.Finance},
	{"patient_saeed", []float64{120, 118, 116, 115}, engine.Healthcare},
	{"product_stock", []float64{100, 85, 120, 95}, engine.Inventory},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the reference scenario in memory: one dataset per mode, then status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := session.New(
			session.WithOutput(cmd.OutOrStdout()),
			session.WithLogger(log.With("session", "demo")),
		)
		runDemo(s)
		return nil
	},
}

func runDemo(s *session.Store) {
	for _, d := range demoDatasets {
		s.AddDataset(d.name, d.values)
	}
	for _, d := range demoDatasets {
		s.SwitchMode(d.mode)
		s.Analyze(d.name)
	}
	s.Status()
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
