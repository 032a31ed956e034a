package cmd

import (
	"fmt"
	"os"

	"github.com/KaramelBytes/domainlens-cli/internal/engine"
	"github.com/KaramelBytes/domainlens-cli/internal/report"
	"github.com/spf13/cobra"
)

var (
	anaMode       string
	anaOutputPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <name>",
	Short: "Analyze a dataset with the current mode's formulas",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		s, _, err := openSession(cmd)
		if err != nil {
			return err
		}
		// --mode applies to this run only; the session file is not rewritten.
		if anaMode != "" {
			m, err := engine.ParseMode(anaMode)
			if err != nil {
				return err
			}
			s.SwitchMode(m)
		}
		if _, found := s.Analyze(name); !found || anaOutputPath == "" {
			return nil
		}
		d, _ := s.Dataset(name)
		md := report.New(d.Name, s.Mode(), d.Values).Markdown()
		if err := os.WriteFile(anaOutputPath, []byte(md), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote analysis to %s\n", anaOutputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaMode, "mode", "m", "", "analyze under this mode without changing the session")
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write the analysis (Markdown)")
}
