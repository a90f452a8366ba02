package models

import (
	"time"
)

// ConvertOperation represents a conversion run configuration
type ConvertOperation struct {
	ID                     string
	RootPath               string
	Exclusions             []string
	WhitelistExtensionless bool
	KeepBOM                bool
	Verbose                bool
	CreatedAt              time.Time
	StartedAt              *time.Time
	CompletedAt            *time.Time
}

// Validate checks if the operation configuration is valid
func (op *ConvertOperation) Validate() error {
	if op.RootPath == "" {
		return &ValidationError{Field: "RootPath", Message: "root path is required"}
	}
	for _, ext := range op.Exclusions {
		if ext == "" {
			return &ValidationError{Field: "Exclusions", Message: "exclusion entries must not be empty"}
		}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
