package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sbogaert/bomsweep/pkg/config"
)

// NewExcludeCommand creates the exclude command and its subcommands
func NewExcludeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exclude",
		Short: "Manage the extension exclusion list",
		Long: `View or modify the list of file extensions the conversion sweep skips.
Every change is saved to the configuration file immediately.`,
	}

	cmd.AddCommand(newExcludeListCommand())
	cmd.AddCommand(newExcludeAddCommand())
	cmd.AddCommand(newExcludeRemoveCommand())
	cmd.AddCommand(newExcludeResetCommand())

	return cmd
}

func newExcludeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the excluded extensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if len(cfg.Exclude) == 0 {
				fmt.Println("No extensions are excluded.")
				return nil
			}

			for _, ext := range cfg.Exclude {
				fmt.Println(ext)
			}
			return nil
		},
	}
}

func newExcludeAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add EXTENSION...",
		Short: "Add extensions to the exclusion list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			changed := false
			for _, arg := range args {
				normalized := config.NormalizeExtension(arg)
				if normalized == "" {
					return fmt.Errorf("invalid extension: %q", arg)
				}
				if cfg.AddExclusion(arg) {
					fmt.Printf("Added %s\n", normalized)
					changed = true
				} else {
					fmt.Printf("%s is already excluded\n", normalized)
				}
			}

			if !changed {
				return nil
			}
			return saveConfig(cfg)
		},
	}
}

func newExcludeRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove EXTENSION...",
		Short: "Remove extensions from the exclusion list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			changed := false
			for _, arg := range args {
				normalized := config.NormalizeExtension(arg)
				if cfg.RemoveExclusion(arg) {
					fmt.Printf("Removed %s\n", normalized)
					changed = true
				} else {
					fmt.Printf("%s was not excluded\n", normalized)
				}
			}

			if !changed {
				return nil
			}
			return saveConfig(cfg)
		},
	}
}

func newExcludeResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default exclusion list",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			cfg.ResetExclusions()
			if err := saveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("Exclusion list reset to %d default entries.\n", len(cfg.Exclude))
			return nil
		},
	}
}
