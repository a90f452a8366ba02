package config

import (
	"github.com/sbogaert/bomsweep/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Exclude []string      `yaml:"exclude"`
}

// ConvertConfig holds conversion-related settings
type ConvertConfig struct {
	// WhitelistExtensionless allows files without an extension into the sweep
	WhitelistExtensionless bool `yaml:"whitelist_extensionless"`
	// KeepBOM retains the byte-order mark in the rewritten UTF-8 output
	KeepBOM bool `yaml:"keep_bom"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show progress counters
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // Log file path (empty = disabled)
}

// DefaultExclusions is the exclusion list seeded when no configuration exists.
// Extensions of formats that are never BOM-marked text.
var DefaultExclusions = []string{
	".exe", ".dll", ".so", ".bin", ".obj",
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico",
	".zip", ".gz", ".tar", ".7z", ".rar",
	".pdf", ".doc", ".docx", ".xls", ".xlsx",
	".mp3", ".mp4", ".avi", ".mkv", ".wav",
	".ttf", ".woff", ".woff2",
}

// Default returns the default configuration
func Default() *Config {
	exclude := make([]string, len(DefaultExclusions))
	copy(exclude, DefaultExclusions)

	return &Config{
		Convert: ConvertConfig{
			WhitelistExtensionless: false,
			KeepBOM:                false,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Format:  "json",
			Level:   "info",
			File:    "",
		},
		Exclude: exclude,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	for _, ext := range c.Exclude {
		if NormalizeExtension(ext) == "" {
			return &models.ValidationError{
				Field:   "exclude",
				Message: "entries must be non-empty extensions",
			}
		}
	}

	return nil
}
