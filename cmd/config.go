package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/helmcode/specscout/pkg/config"
	"github.com/helmcode/specscout/pkg/logger"
)

// ErrIssuesFound is returned when a checked document has open issues.
// The report has already been printed, so callers exit without a message.
var ErrIssuesFound = errors.New("validation issues found")

var (
	configFile string
	logLevel   string
	logFormat  string

	settings = config.Default()
)

// AddGlobalFlags registers the flags shared by every subcommand.
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default: <project-root>/"+config.DefaultFileName+" if present)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")
}

// Setup loads configuration and installs the logger. It runs before every
// subcommand.
func Setup(cmd *cobra.Command, args []string) error {
	path, required := configFile, true
	if path == "" {
		root := "."
		if f := cmd.Flags().Lookup("project-root"); f != nil {
			root = f.Value.String()
		}
		path, required = filepath.Join(root, config.DefaultFileName), false
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(os.Getenv)

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	logger.Init(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	logger.ForComponent("cmd").Debug("configuration loaded", "path", path, "required", required)

	settings = cfg
	return nil
}

// stringSetting returns the flag value when it was set explicitly and the
// configured value otherwise.
func stringSetting(cmd *cobra.Command, flag, flagValue, configured string) string {
	if cmd.Flags().Changed(flag) {
		return flagValue
	}
	return configured
}
