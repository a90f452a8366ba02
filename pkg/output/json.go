package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sbogaert/bomsweep/pkg/models"
)

// JSONFormatter formats output as JSON for automation and scripting.
// Events are collected during the run and emitted as a single document
// together with the final report.
type JSONFormatter struct {
	writer io.Writer
	events []JSONEvent
}

// JSONEvent represents a single event in the JSON output
type JSONEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Path      string    `json:"path,omitempty"`
	Encoding  string    `json:"encoding,omitempty"`
	Bytes     int64     `json:"bytes,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// JSONReport represents the final report document
type JSONReport struct {
	OperationID string          `json:"operation_id"`
	RootPath    string          `json:"root_path"`
	KeepBOM     bool            `json:"keep_bom"`
	Status      string          `json:"status"`
	Duration    string          `json:"duration"`
	DurationMs  int64           `json:"duration_ms"`
	Stats       JSONStats       `json:"stats"`
	Events      []JSONEvent     `json:"events,omitempty"`
	Errors      []JSONErrorData `json:"errors,omitempty"`
}

// JSONStats represents run statistics in JSON form
type JSONStats struct {
	FilesScanned   int   `json:"files_scanned"`
	FilesConverted int   `json:"files_converted"`
	FilesSkipped   int   `json:"files_skipped"`
	FilesErrored   int   `json:"files_errored"`
	DirsSkipped    int   `json:"dirs_skipped"`
	BytesWritten   int64 `json:"bytes_written"`
}

// JSONErrorData represents a per-file error entry
type JSONErrorData struct {
	Path  string `json:"path"`
	Stage string `json:"stage"`
	Error string `json:"error"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		events: make([]JSONEvent, 0),
	}
}

// Start initializes the formatter
func (f *JSONFormatter) Start(writer io.Writer) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	return nil
}

// Progress records a per-file event
func (f *JSONFormatter) Progress(event FileEvent) error {
	jsonEvent := JSONEvent{
		Timestamp: time.Now(),
		Type:      string(event.Type),
		Path:      event.Path,
		Encoding:  string(event.Encoding),
		Bytes:     event.Bytes,
	}
	if event.Err != nil {
		jsonEvent.Error = event.Err.Error()
	}
	f.events = append(f.events, jsonEvent)
	return nil
}

// Complete emits the full JSON document
func (f *JSONFormatter) Complete(report *models.ConvertReport) error {
	doc := JSONReport{
		OperationID: report.OperationID,
		RootPath:    report.RootPath,
		KeepBOM:     report.KeepBOM,
		Status:      string(report.Status),
		Duration:    report.Duration.String(),
		DurationMs:  report.Duration.Milliseconds(),
		Stats: JSONStats{
			FilesScanned:   report.Stats.FilesScanned,
			FilesConverted: report.Stats.FilesConverted,
			FilesSkipped:   report.Stats.FilesSkipped,
			FilesErrored:   report.Stats.FilesErrored,
			DirsSkipped:    report.Stats.DirsSkipped,
			BytesWritten:   report.Stats.BytesWritten,
		},
		Events: f.events,
	}

	for _, err := range report.Errors {
		doc.Errors = append(doc.Errors, JSONErrorData{
			Path:  err.FilePath,
			Stage: string(err.Stage),
			Error: err.Error,
		})
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

// Error records a run-level error as an event
func (f *JSONFormatter) Error(err error) error {
	f.events = append(f.events, JSONEvent{
		Timestamp: time.Now(),
		Type:      "error",
		Error:     err.Error(),
	})
	return nil
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
