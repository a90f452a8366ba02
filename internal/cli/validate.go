package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/sbogaert/bomsweep/pkg/config"
	"github.com/sbogaert/bomsweep/pkg/models"
)

// validateConvertFlags validates the convert command flags
func validateConvertFlags() error {
	info, err := os.Stat(convertFlags.Root)
	if os.IsNotExist(err) {
		return fmt.Errorf("root path does not exist: %s", convertFlags.Root)
	}
	if err != nil {
		return fmt.Errorf("failed to access root path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path is not a directory: %s", convertFlags.Root)
	}

	validOutputs := map[string]bool{"human": true, "json": true}
	if !validOutputs[convertFlags.Output] {
		return fmt.Errorf("invalid output format: %s (valid: human, json)", convertFlags.Output)
	}

	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[convertFlags.LogFormat] {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", convertFlags.LogFormat)
	}

	return nil
}

// createConvertOperation builds the conversion operation from configuration
func createConvertOperation(cfg *config.Config) *models.ConvertOperation {
	exclusions := make([]string, len(cfg.Exclude))
	copy(exclusions, cfg.Exclude)

	return &models.ConvertOperation{
		ID:                     uuid.New().String(),
		RootPath:               convertFlags.Root,
		Exclusions:             exclusions,
		WhitelistExtensionless: cfg.Convert.WhitelistExtensionless,
		KeepBOM:                cfg.Convert.KeepBOM,
		Verbose:                globalFlags.Verbose,
		CreatedAt:              time.Now(),
	}
}
