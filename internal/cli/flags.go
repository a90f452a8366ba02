package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbogaert/bomsweep/pkg/config"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
}

var globalFlags GlobalFlags

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(
		&globalFlags.ConfigFile,
		"config",
		"",
		"config file (default is $HOME/.config/bomsweep/config.yaml)",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Verbose,
		"verbose",
		"v",
		false,
		"verbose output",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Quiet,
		"quiet",
		"q",
		false,
		"suppress non-error output",
	)
}

// GetGlobalFlags returns the global flags
func GetGlobalFlags() *GlobalFlags {
	return &globalFlags
}

// configFilePath resolves the settings file location, honoring --config
func configFilePath() (string, error) {
	if globalFlags.ConfigFile != "" {
		return globalFlags.ConfigFile, nil
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the configuration, honoring --config. An explicit
// --config path that fails to load is an error; a corrupt store at the
// default location is reported as a warning and replaced by the defaults.
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring unusable config, using defaults: %v\n", err)
	}
	return cfg, nil
}

// saveConfig persists the configuration to the resolved settings file
func saveConfig(cfg *config.Config) error {
	path, err := configFilePath()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	return config.SaveToFile(cfg, path)
}
