package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cfgpkg "github.com/KaramelBytes/domainlens-cli/internal/config"
	"github.com/KaramelBytes/domainlens-cli/internal/engine"
	"github.com/KaramelBytes/domainlens-cli/internal/logging"
	"github.com/KaramelBytes/domainlens-cli/internal/parser"
	"github.com/KaramelBytes/domainlens-cli/internal/session"
	"github.com/KaramelBytes/domainlens-cli/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile     string
	debug       bool
	noColor     bool
	sessionName string

	// Loaded configuration
	cfg *cfgpkg.Global
	log = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "domainlens",
	Short: "DomainLens CLI: analyze small numeric datasets under a selectable domain mode",
	Long: `DomainLens keeps named numeric datasets in a session and analyzes them with the
formula set of the active mode: education, finance, healthcare or inventory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	err := rootCmd.Execute()
	_ = log.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.domainlens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&sessionName, "session", "s", "default", "session name")
}

func loadConfig() {
	c, loadErr := cfgpkg.Load(cfgFile)
	if loadErr != nil {
		// Non-fatal: fall back to built-in defaults
		c = &cfgpkg.Global{DefaultMode: "education", LogLevel: "warn", Color: true}
	}
	cfg = c

	logCfg := *cfg
	if debug {
		logCfg.LogLevel = "debug"
	}
	l, err := logging.NewFromConfig(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: logging disabled: %v\n", err)
		l = logging.Nop()
	}
	// loadConfig runs once per command execution; release the previous log file.
	_ = log.Close()
	log = l
	logging.SetGlobal(l)

	if noColor || !cfg.Color {
		color.NoColor = true
	}
	if loadErr != nil {
		log.Warn("failed to load config, using defaults", "file", cfgFile, "error", loadErr)
		return
	}
	log.Debug("config loaded", "file", cfgFile, "sessions_dir", cfg.SessionsDir, "default_mode", cfg.DefaultMode)
}

func sessionsDir() (string, error) {
	if cfg != nil && cfg.SessionsDir != "" {
		return utils.ExpandHome(cfg.SessionsDir)
	}
	dir, err := cfgpkg.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sessions"), nil
}

func sessionPath(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("session name is required")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid session name: %q", name)
	}
	dir, err := sessionsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+".yaml"), nil
}

func defaultMode() (engine.Mode, error) {
	if cfg == nil || cfg.DefaultMode == "" {
		return engine.Education, nil
	}
	m, err := engine.ParseMode(cfg.DefaultMode)
	if err != nil {
		return 0, fmt.Errorf("config default_mode: %w", err)
	}
	return m, nil
}

// openSession loads the named session, or starts one in the configured default mode.
func openSession(cmd *cobra.Command) (*session.Store, string, error) {
	path, err := sessionPath(sessionName)
	if err != nil {
		return nil, "", err
	}
	mode, err := defaultMode()
	if err != nil {
		return nil, "", err
	}
	s, err := session.Load(path,
		session.WithMode(mode),
		session.WithOutput(cmd.OutOrStdout()),
		session.WithLogger(log.With("session", sessionName)),
	)
	if err != nil {
		return nil, "", err
	}
	return s, path, nil
}

func parseOptions(decimal string) (parser.Options, error) {
	var opt parser.Options
	sep := decimal
	if sep == "" && cfg != nil {
		sep = cfg.DecimalSeparator
	}
	switch strings.ToLower(strings.TrimSpace(sep)) {
	case ",", "comma":
		opt.DecimalSeparator = ','
	case ".", "dot":
		opt.DecimalSeparator = '.'
	case "":
	default:
		return opt, fmt.Errorf("unsupported decimal separator: %s (use '.'|'comma')", sep)
	}
	return opt, nil
}
