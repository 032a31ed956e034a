package cmd

import (
	"fmt"

	"github.com/KaramelBytes/domainlens-cli/internal/engine"
	"github.com/spf13/cobra"
)

var modeList bool

var modeCmd = &cobra.Command{
	Use:   "mode [education|finance|healthcare|inventory]",
	Short: "Show or switch the session's analysis mode",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if modeList {
			for _, m := range engine.AllModes() {
				fmt.Fprintf(out, "- %s: %s\n", m.Key(), m)
			}
			return nil
		}
		s, path, err := openSession(cmd)
		if err != nil {
			return err
		}
		if len(args) == 0 {
			fmt.Fprintf(out, "%s (%s)\n", s.Mode(), s.Mode().Key())
			return nil
		}
		m, err := engine.ParseMode(args[0])
		if err != nil {
			return err
		}
		s.SwitchMode(m)
		return s.Save(path)
	},
}

func init() {
	rootCmd.AddCommand(modeCmd)
	modeCmd.Flags().BoolVar(&modeList, "list", false, "list available modes")
}
