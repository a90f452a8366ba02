package output

import (
	"io"

	"github.com/cheggaaa/pb/v3"

	"github.com/sbogaert/bomsweep/pkg/models"
)

// progressTemplate renders a running file counter; the total number of
// files is unknown up front because the traversal is lazy.
const progressTemplate = `{{string . "prefix"}}{{counters . }} files`

// ProgressFormatter renders a live counter during the run and the
// human-readable summary at the end
type ProgressFormatter struct {
	bar   *pb.ProgressBar
	human *HumanFormatter
}

// NewProgressFormatter creates a new progress formatter
func NewProgressFormatter() *ProgressFormatter {
	return &ProgressFormatter{
		human: NewHumanFormatter(false),
	}
}

// Start initializes the counter
func (f *ProgressFormatter) Start(writer io.Writer) error {
	if err := f.human.Start(writer); err != nil {
		return err
	}

	f.bar = pb.ProgressBarTemplate(progressTemplate).New(0)
	f.bar.Set("prefix", "Converting: ")
	if writer != nil {
		f.bar.SetWriter(writer)
	}
	f.bar.Start()
	return nil
}

// Progress advances the counter for every file the sweep touches
func (f *ProgressFormatter) Progress(event FileEvent) error {
	if f.bar != nil {
		f.bar.Increment()
	}
	if event.Type == EventFileError {
		// Errors stay visible above the counter line
		return f.human.Progress(event)
	}
	return nil
}

// Complete stops the counter and prints the summary
func (f *ProgressFormatter) Complete(report *models.ConvertReport) error {
	if f.bar != nil {
		f.bar.Finish()
	}
	return f.human.Complete(report)
}

// Error reports an error
func (f *ProgressFormatter) Error(err error) error {
	return f.human.Error(err)
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}
