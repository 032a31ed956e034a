package cmd

import (
	"fmt"

	"github.com/KaramelBytes/domainlens-cli/internal/engine"
	"github.com/spf13/cobra"
)

var listValues bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active mode and number of datasets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openSession(cmd)
		if err != nil {
			return err
		}
		s.Status()
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List datasets in the session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openSession(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		names := s.Names()
		if len(names) == 0 {
			fmt.Fprintln(out, "(no datasets)")
			return nil
		}
		for _, n := range names {
			d, _ := s.Dataset(n)
			if listValues {
				fmt.Fprintf(out, "- %s (%d values): %s\n", n, len(d.Values), engine.FormatValues(d.Values))
				continue
			}
			fmt.Fprintf(out, "- %s (%d values)\n", n, len(d.Values))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listValues, "values", false, "include dataset values")
}
