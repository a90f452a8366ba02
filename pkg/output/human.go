package output

import (
	"fmt"
	"io"
	"time"

	"github.com/sbogaert/bomsweep/pkg/models"
)

// HumanFormatter formats output in human-readable format
type HumanFormatter struct {
	writer    io.Writer
	verbose   bool
	startTime time.Time
}

// NewHumanFormatter creates a new human-readable formatter.
// In verbose mode every converted and skipped file is printed; otherwise
// only errors and the final summary appear.
func NewHumanFormatter(verbose bool) *HumanFormatter {
	return &HumanFormatter{verbose: verbose}
}

// Start initializes the formatter
func (f *HumanFormatter) Start(writer io.Writer) error {
	f.writer = writer
	f.startTime = time.Now()
	return nil
}

// Progress reports a per-file event
func (f *HumanFormatter) Progress(event FileEvent) error {
	if f.writer == nil {
		return nil
	}

	switch event.Type {
	case EventFileConvert:
		if f.verbose {
			fmt.Fprintf(f.writer, "✓ %s (%s, %s)\n",
				event.Path, event.Encoding, formatBytes(event.Bytes))
		}

	case EventFileSkip:
		if f.verbose {
			fmt.Fprintf(f.writer, "- %s (excluded)\n", event.Path)
		}

	case EventFileError:
		fmt.Fprintf(f.writer, "✗ %s: %v\n", event.Path, event.Err)
	}

	return nil
}

// Complete finalizes output and displays the run summary
func (f *HumanFormatter) Complete(report *models.ConvertReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}

	fmt.Fprintf(f.writer, "\n")
	fmt.Fprintf(f.writer, "Conversion completed in %s\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintf(f.writer, "\n")
	fmt.Fprintf(f.writer, "Summary:\n")
	fmt.Fprintf(f.writer, "  Files scanned:    %d\n", report.Stats.FilesScanned)
	fmt.Fprintf(f.writer, "  Files converted:  %d\n", report.Stats.FilesConverted)
	fmt.Fprintf(f.writer, "  Files skipped:    %d\n", report.Stats.FilesSkipped)
	fmt.Fprintf(f.writer, "  Files errored:    %d\n", report.Stats.FilesErrored)
	if report.Stats.DirsSkipped > 0 {
		fmt.Fprintf(f.writer, "  Dirs skipped:     %d\n", report.Stats.DirsSkipped)
	}
	fmt.Fprintf(f.writer, "  Data written:     %s\n", formatBytes(report.Stats.BytesWritten))
	fmt.Fprintf(f.writer, "\n")
	fmt.Fprintf(f.writer, "Status: %s\n", report.Status)

	if len(report.Errors) > 0 {
		fmt.Fprintf(f.writer, "\nErrors:\n")
		for _, err := range report.Errors {
			fmt.Fprintf(f.writer, "  [%s] %s: %s\n", err.Stage, err.FilePath, err.Error)
		}
	}

	return nil
}

// Error reports an error
func (f *HumanFormatter) Error(err error) error {
	if f.writer != nil {
		fmt.Fprintf(f.writer, "Error: %v\n", err)
	}
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// formatBytes formats bytes in human-readable format
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
