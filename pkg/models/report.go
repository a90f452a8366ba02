package models

import (
	"time"
)

// ConvertReport represents the results of a conversion run
type ConvertReport struct {
	// Operation details
	OperationID string
	RootPath    string
	KeepBOM     bool

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Statistics
	Stats Statistics

	// Errors encountered
	Errors []ConvertError

	// Overall status
	Status ConvertStatus
}

// Statistics holds conversion run metrics
type Statistics struct {
	// FilesScanned counts every file yielded by the traversal
	FilesScanned int
	// FilesConverted counts files fully sniffed, transcoded and rewritten
	FilesConverted int
	// FilesSkipped counts files rejected by the exclusion policy
	FilesSkipped int
	// FilesErrored counts files that failed during sniff, read, transcode or write
	FilesErrored int
	// DirsSkipped counts directories the traversal could not enumerate
	DirsSkipped int
	// BytesWritten is the total size of rewritten content
	BytesWritten int64
}

// ConvertStatus represents the overall result
type ConvertStatus string

const (
	// StatusSuccess indicates all eligible files were converted
	StatusSuccess ConvertStatus = "success"
	// StatusPartial indicates some files failed
	StatusPartial ConvertStatus = "partial"
	// StatusFailed indicates the run itself failed to start
	StatusFailed ConvertStatus = "failed"
	// StatusCancelled indicates the run was cancelled
	StatusCancelled ConvertStatus = "cancelled"
)

// ConvertError represents a per-file failure during a run
type ConvertError struct {
	FilePath  string
	Stage     Stage
	Error     string
	Timestamp time.Time
}

// Stage identifies the pipeline step a failure occurred in
type Stage string

const (
	StageEnumerate Stage = "enumerate"
	StageSniff     Stage = "sniff"
	StageRead      Stage = "read"
	StageTranscode Stage = "transcode"
	StageWrite     Stage = "write"
)

// ExitCode returns the appropriate exit code for the run status
func (s ConvertStatus) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusPartial:
		return 1
	case StatusFailed:
		return 2
	case StatusCancelled:
		return 3
	default:
		return 2
	}
}
