package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/domainlens-cli/internal/config"
	"github.com/KaramelBytes/domainlens-cli/internal/engine"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set DomainLens configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		fmt.Fprintf(out, "default_mode: %s\n", cfg.DefaultMode)
		fmt.Fprintf(out, "sessions_dir: %s\n", cfg.SessionsDir)
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "log_format: %s\n", cfg.LogFormat)
		if cfg.LogOutput != "" {
			fmt.Fprintf(out, "log_output: %s\n", cfg.LogOutput)
		}
		fmt.Fprintf(out, "color: %t\n", cfg.Color)
		if cfg.DecimalSeparator != "" {
			fmt.Fprintf(out, "decimal_separator: %s\n", cfg.DecimalSeparator)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "default_mode":
			m, err := engine.ParseMode(val)
			if err != nil {
				return err
			}
			cfg.DefaultMode = m.Key()
		case "sessions_dir":
			cfg.SessionsDir = val
		case "log_level":
			if _, err := zerolog.ParseLevel(strings.ToLower(val)); err != nil || val == "" {
				return fmt.Errorf("invalid log_level: %s (use debug|info|warn|error)", val)
			}
			cfg.LogLevel = strings.ToLower(val)
		case "log_format":
			switch val {
			case "console", "json":
				cfg.LogFormat = val
			default:
				return fmt.Errorf("invalid log_format: %s (use console or json)", val)
			}
		case "log_output":
			cfg.LogOutput = val
		case "color":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for color: %v", val)
			}
			cfg.Color = b
		case "decimal_separator":
			if _, err := parseOptions(val); err != nil {
				return err
			}
			cfg.DecimalSeparator = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		log.Info("config saved", "key", key, "file", cfgFile)
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
