package convert

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sbogaert/bomsweep/pkg/encoding"
	"github.com/sbogaert/bomsweep/pkg/logging"
	"github.com/sbogaert/bomsweep/pkg/models"
	"github.com/sbogaert/bomsweep/pkg/output"
	"github.com/sbogaert/bomsweep/pkg/storage"
)

// Engine drives a conversion run: it walks the tree, applies the exclusion
// policy, and sniffs, transcodes and rewrites each eligible file. A failure
// on one file never aborts the run.
type Engine struct {
	backend   *storage.Local
	formatter output.Formatter
	logger    logging.Logger
	operation *models.ConvertOperation
	out       io.Writer
}

// NewEngine creates a new conversion engine
func NewEngine(
	backend *storage.Local,
	formatter output.Formatter,
	logger logging.Logger,
	operation *models.ConvertOperation,
	out io.Writer,
) *Engine {
	if out == nil {
		out = io.Discard
	}
	return &Engine{
		backend:   backend,
		formatter: formatter,
		logger:    logger,
		operation: operation,
		out:       out,
	}
}

// Run executes the conversion sweep and returns a report. A non-nil error
// means the run could not start; the report then carries StatusFailed.
// Per-file failures are recorded in the report and do not produce an error.
func (e *Engine) Run(ctx context.Context) (*models.ConvertReport, error) {
	startTime := time.Now()
	report := &models.ConvertReport{
		OperationID: e.operation.ID,
		RootPath:    e.operation.RootPath,
		KeepBOM:     e.operation.KeepBOM,
		StartTime:   startTime,
		Status:      models.StatusSuccess,
	}

	if err := e.formatter.Start(e.out); err != nil {
		return e.fatal(ctx, report, fmt.Errorf("failed to start output: %w", err))
	}

	if err := e.operation.Validate(); err != nil {
		err = fmt.Errorf("invalid operation: %w", err)
		e.formatter.Error(err)
		return e.fatal(ctx, report, err)
	}

	e.logger.Info(ctx, "Starting conversion run", logging.Fields{
		"operation_id": e.operation.ID,
		"root":         e.operation.RootPath,
		"keep_bom":     e.operation.KeepBOM,
		"exclusions":   len(e.operation.Exclusions),
	})

	it := e.backend.Enumerate(ctx, func(dir string, err error) {
		report.Stats.DirsSkipped++
		report.Errors = append(report.Errors, models.ConvertError{
			FilePath:  dir,
			Stage:     models.StageEnumerate,
			Error:     err.Error(),
			Timestamp: time.Now(),
		})
		e.logger.Warn(ctx, "Skipping unreadable directory", logging.Fields{
			"dir":   dir,
			"error": err.Error(),
		})
	})

	for path, ok := it.Next(); ok; path, ok = it.Next() {
		e.processFile(ctx, path, report)
	}

	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	switch {
	case ctx.Err() != nil:
		report.Status = models.StatusCancelled
	case report.Stats.FilesErrored > 0 || report.Stats.DirsSkipped > 0:
		report.Status = models.StatusPartial
	}

	e.logger.Info(ctx, "Conversion run completed", logging.Fields{
		"operation_id": e.operation.ID,
		"scanned":      report.Stats.FilesScanned,
		"converted":    report.Stats.FilesConverted,
		"skipped":      report.Stats.FilesSkipped,
		"errored":      report.Stats.FilesErrored,
		"status":       string(report.Status),
	})

	if err := e.formatter.Complete(report); err != nil {
		e.logger.Error(ctx, "Failed to finalize output", err, nil)
	}

	return report, nil
}

// fatal closes out a run that could not start
func (e *Engine) fatal(ctx context.Context, report *models.ConvertReport, err error) (*models.ConvertReport, error) {
	report.Status = models.StatusFailed
	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	e.logger.Error(ctx, "Conversion run could not start", err, logging.Fields{
		"operation_id": e.operation.ID,
	})
	return report, err
}

// processFile runs the sniff-read-transcode-write pipeline for a single file
func (e *Engine) processFile(ctx context.Context, path string, report *models.ConvertReport) {
	report.Stats.FilesScanned++

	if !ShouldProcess(path, e.operation.Exclusions, e.operation.WhitelistExtensionless) {
		report.Stats.FilesSkipped++
		e.logger.Debug(ctx, "Skipping excluded file", logging.Fields{"path": path})
		e.formatter.Progress(output.FileEvent{
			Type: output.EventFileSkip,
			Path: path,
		})
		return
	}

	enc, err := encoding.SniffFile(path)
	if err != nil {
		e.fail(ctx, report, path, models.StageSniff, err)
		return
	}

	content, err := e.backend.ReadFile(ctx, path)
	if err != nil {
		e.fail(ctx, report, path, models.StageRead, err)
		return
	}

	converted, err := encoding.ToUTF8(content, enc, e.operation.KeepBOM)
	if err != nil {
		e.fail(ctx, report, path, models.StageTranscode, err)
		return
	}

	if err := e.backend.WriteFile(ctx, path, converted); err != nil {
		e.fail(ctx, report, path, models.StageWrite, err)
		return
	}

	report.Stats.FilesConverted++
	report.Stats.BytesWritten += int64(len(converted))

	e.logger.Debug(ctx, "Converted file", logging.Fields{
		"path":     path,
		"encoding": string(enc),
		"bytes":    len(converted),
	})
	e.formatter.Progress(output.FileEvent{
		Type:     output.EventFileConvert,
		Path:     path,
		Encoding: enc,
		Bytes:    int64(len(converted)),
	})
}

// fail records a per-file failure and lets the sweep continue
func (e *Engine) fail(ctx context.Context, report *models.ConvertReport, path string, stage models.Stage, err error) {
	report.Stats.FilesErrored++
	report.Errors = append(report.Errors, models.ConvertError{
		FilePath:  path,
		Stage:     stage,
		Error:     err.Error(),
		Timestamp: time.Now(),
	})

	e.logger.Error(ctx, "Failed to convert file", err, logging.Fields{
		"path":  path,
		"stage": string(stage),
	})
	e.formatter.Progress(output.FileEvent{
		Type: output.EventFileError,
		Path: path,
		Err:  err,
	})
}
