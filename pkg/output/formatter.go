package output

import (
	"io"

	"github.com/sbogaert/bomsweep/pkg/models"
)

// EventType identifies a progress notification kind
type EventType string

const (
	// EventFileConvert reports a fully converted file
	EventFileConvert EventType = "file_convert"
	// EventFileSkip reports a file rejected by the exclusion policy
	EventFileSkip EventType = "file_skip"
	// EventFileError reports a per-file failure
	EventFileError EventType = "file_error"
)

// FileEvent represents a progress notification during a conversion run
type FileEvent struct {
	Type     EventType
	Path     string
	Encoding models.Encoding
	Bytes    int64
	Err      error
}

// Formatter defines the interface for output formatting.
// Implementations include human-readable, JSON and progress-bar formatters.
type Formatter interface {
	// Start initializes the formatter for a new conversion run
	Start(writer io.Writer) error

	// Progress reports a per-file event during the run
	Progress(event FileEvent) error

	// Complete finalizes output and displays the run summary
	Complete(report *models.ConvertReport) error

	// Error reports a run-level error
	Error(err error) error

	// Name returns the formatter name
	Name() string
}
