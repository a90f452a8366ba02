package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbogaert/bomsweep/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "bomsweep",
		Short: "Recursive UTF-8 conversion utility",
		Long: `bomsweep recursively walks a directory tree, detects each file's text
encoding from its byte-order mark, and rewrites the file as UTF-8.
A persisted exclusion list keeps binary formats out of the sweep.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewConvertCommand())
	rootCmd.AddCommand(cli.NewFormatsCommand())
	rootCmd.AddCommand(cli.NewExcludeCommand())
	rootCmd.AddCommand(cli.NewEncodingCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	return rootCmd.Execute()
}
