package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/KaramelBytes/domainlens-cli/internal/engine"
	"github.com/KaramelBytes/domainlens-cli/internal/session"
	"github.com/spf13/cobra"
)

var initMode string

var initCmd = &cobra.Command{
	Use:   "init <session-name>",
	Short: "Create a new empty session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := sessionPath(args[0])
		if err != nil {
			return err
		}
		// Refuse to overwrite an existing session.
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("session already exists at %s", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat session: %w", err)
		}
		mode, err := defaultMode()
		if err != nil {
			return err
		}
		if initMode != "" {
			if mode, err = engine.ParseMode(initMode); err != nil {
				return err
			}
		}
		s := session.New(session.WithMode(mode), session.WithOutput(io.Discard), session.WithLogger(log))
		if err := s.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Session initialized: %s (%s)\n", path, mode)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initMode, "mode", "m", "", "initial mode (defaults to config default_mode)")
}
