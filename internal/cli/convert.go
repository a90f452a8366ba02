package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbogaert/bomsweep/pkg/config"
	"github.com/sbogaert/bomsweep/pkg/convert"
	"github.com/sbogaert/bomsweep/pkg/logging"
	"github.com/sbogaert/bomsweep/pkg/output"
	"github.com/sbogaert/bomsweep/pkg/storage"
)

// ConvertFlags holds convert command flags
type ConvertFlags struct {
	Root                 string
	KeepBOM              bool
	IncludeExtensionless bool
	Output               string
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var convertFlags ConvertFlags

// NewConvertCommand creates the convert command
func NewConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert all files under a directory to UTF-8",
		Long: `Recursively walk a directory tree, detect each file's encoding from its
byte-order mark, and rewrite the file as UTF-8. Files whose extension is on
the exclusion list are skipped; a failure on one file never stops the sweep.`,
		RunE: runConvert,
	}

	cmd.Flags().StringVarP(&convertFlags.Root, "root", "r", "", "root directory to convert (required)")
	cmd.MarkFlagRequired("root")

	cmd.Flags().BoolVar(&convertFlags.KeepBOM, "keep-bom", false, "retain the byte-order mark in the UTF-8 output")
	cmd.Flags().BoolVar(&convertFlags.IncludeExtensionless, "include-extensionless", false, "also convert files without an extension")
	cmd.Flags().StringVarP(&convertFlags.Output, "output", "o", "human", "output format: human, json")

	// Logging flags
	cmd.Flags().StringVar(&convertFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&convertFlags.LogFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().StringVar(&convertFlags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := validateConvertFlags(); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConvertFlags(cmd, cfg)

	operation := createConvertOperation(cfg)

	backend, err := storage.NewLocal(convertFlags.Root)
	if err != nil {
		return fmt.Errorf("failed to open root directory: %w", err)
	}
	defer backend.Close()

	var writer io.Writer = os.Stdout
	if globalFlags.Quiet {
		writer = io.Discard
	}

	var formatter output.Formatter
	switch convertFlags.Output {
	case "json":
		formatter = output.NewJSONFormatter()
	default:
		if cfg.Output.Progress && !globalFlags.Verbose && !globalFlags.Quiet {
			formatter = output.NewProgressFormatter()
		} else {
			formatter = output.NewHumanFormatter(globalFlags.Verbose)
		}
	}

	logger, err := createLogger(convertFlags.LogFile, convertFlags.LogFormat, convertFlags.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	engine := convert.NewEngine(backend, formatter, logger, operation, writer)

	report, err := engine.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: conversion failed: %v\n", err)
	}

	os.Exit(report.Status.ExitCode())
	return nil
}

// applyConvertFlags overrides config values with explicitly set flags
func applyConvertFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("keep-bom") {
		cfg.Convert.KeepBOM = convertFlags.KeepBOM
	}
	if cmd.Flags().Changed("include-extensionless") {
		cfg.Convert.WhitelistExtensionless = convertFlags.IncludeExtensionless
	}
	if globalFlags.Quiet {
		cfg.Output.Progress = false
	}
}

// createLogger creates a logger based on configuration
func createLogger(logFile, logFormat, logLevel string) (logging.Logger, error) {
	// If no log file specified, return null logger
	if logFile == "" {
		return logging.NewNullLogger(), nil
	}

	var format logging.Format
	switch logFormat {
	case "json":
		format = logging.FormatJSON
	default:
		format = logging.FormatText
	}

	config := logging.FileLoggerConfig{
		Path:       logFile,
		Format:     format,
		Level:      logging.ParseLevel(logLevel),
		MaxSize:    10 * 1024 * 1024, // 10 MB
		MaxBackups: 5,
	}

	return logging.NewFileLogger(config)
}
