package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/domainlens-cli/internal/parser"
	"github.com/spf13/cobra"
)

var (
	addFile    string
	addColumn  string
	addDecimal string
)

var addCmd = &cobra.Command{
	Use:   "add <name> [--] [values...]",
	Short: "Add or replace a named dataset in the session",
	Long: `Add or replace a named dataset in the session.

Values starting with '-' would be read as flags; put them after "--".`,
	Example: `  domainlens add student_ahmed 85 88 90 92
  domainlens add monthly_pnl -- -1200 350 -75.5 900
  domainlens add company_budget --file budget.csv --column amount
  domainlens add readings --file bp.txt --decimal comma`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, raw := args[0], args[1:]
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("dataset name is required")
		}
		if addFile != "" && len(raw) > 0 {
			return fmt.Errorf("pass values as arguments or --file, not both")
		}
		if addColumn != "" && addFile == "" {
			return fmt.Errorf("--column requires --file")
		}
		opt, err := parseOptions(addDecimal)
		if err != nil {
			return err
		}
		opt.Column = addColumn

		var values []float64
		if addFile != "" {
			values, err = parser.ParseFile(addFile, opt)
		} else {
			values, err = parser.ParseValues(raw, opt)
		}
		if err != nil {
			return err
		}

		s, path, err := openSession(cmd)
		if err != nil {
			return err
		}
		s.AddDataset(name, values)
		return s.Save(path)
	},
}

// addFlagError points users at "--" when a negative value was taken for a flag.
func addFlagError(cmd *cobra.Command, err error) error {
	if strings.Contains(err.Error(), "unknown shorthand flag") {
		return fmt.Errorf(`%w (negative values must follow "--", e.g. add <name> -- -5 3)`, err)
	}
	return err
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.SetFlagErrorFunc(addFlagError)
	addCmd.Flags().StringVarP(&addFile, "file", "f", "", "read values from a .txt or .csv/.tsv file")
	addCmd.Flags().StringVar(&addColumn, "column", "", "CSV column (header name) to read")
	addCmd.Flags().StringVar(&addDecimal, "decimal", "", "decimal separator: '.'|'comma' (auto-detect if omitted)")
}
