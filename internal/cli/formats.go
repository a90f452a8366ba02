package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbogaert/bomsweep/pkg/convert"
	"github.com/sbogaert/bomsweep/pkg/logging"
	"github.com/sbogaert/bomsweep/pkg/output"
	"github.com/sbogaert/bomsweep/pkg/storage"
)

// FormatsFlags holds formats command flags
type FormatsFlags struct {
	Root   string
	All    bool
	Report string
	Format string
}

var formatsFlags FormatsFlags

// NewFormatsCommand creates the formats command
func NewFormatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List file extensions present under a directory",
		Long: `Walk a directory tree and report the set of file extensions found.
By default only extensions missing from the exclusion list are shown,
which highlights formats the sweep would try to convert.`,
		RunE: runFormats,
	}

	cmd.Flags().StringVarP(&formatsFlags.Root, "root", "r", "", "root directory to scan (required)")
	cmd.MarkFlagRequired("root")

	cmd.Flags().BoolVar(&formatsFlags.All, "all", false, "include extensions that are on the exclusion list")
	cmd.Flags().StringVar(&formatsFlags.Report, "report", "", "write the inventory to a file instead of stdout")
	cmd.Flags().StringVar(&formatsFlags.Format, "format", "human", "inventory format: human, json")

	return cmd
}

func runFormats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	backend, err := storage.NewLocal(formatsFlags.Root)
	if err != nil {
		return fmt.Errorf("failed to open root directory: %w", err)
	}
	defer backend.Close()

	extensions := convert.ListExtensions(ctx, backend, cfg.Exclude, formatsFlags.All, logging.NewNullLogger())

	return output.WriteFormatsReport(
		backend.Root(),
		extensions,
		formatsFlags.All,
		formatsFlags.Report,
		formatsFlags.Format,
		os.Stdout,
	)
}
