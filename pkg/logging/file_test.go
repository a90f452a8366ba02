package logging

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T, format Format, level Level) (*FileLogger, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.log")
	logger, err := NewFileLogger(FileLoggerConfig{
		Path:   path,
		Format: format,
		Level:  level,
	})
	if err != nil {
		t.Fatalf("NewFileLogger() = %v", err)
	}
	return logger, path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestFileLoggerJSON(t *testing.T) {
	logger, path := newTestLogger(t, FormatJSON, DebugLevel)

	ctx := context.Background()
	logger.Info(ctx, "converted file", Fields{"path": "/tmp/a.txt", "encoding": "utf-16le"})
	logger.Close()

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("log has %d lines, want 1", len(lines))
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
	if entry["message"] != "converted file" {
		t.Errorf("message = %v, want 'converted file'", entry["message"])
	}
	if entry["encoding"] != "utf-16le" {
		t.Errorf("encoding field = %v, want utf-16le", entry["encoding"])
	}
}

func TestFileLoggerText(t *testing.T) {
	logger, path := newTestLogger(t, FormatText, DebugLevel)

	ctx := context.Background()
	logger.Warn(ctx, "directory skipped", Fields{"dir": "/tmp/locked"})
	logger.Close()

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("log has %d lines, want 1", len(lines))
	}
	if !strings.Contains(lines[0], "[WARN]") {
		t.Errorf("line %q missing [WARN]", lines[0])
	}
	if !strings.Contains(lines[0], "dir=/tmp/locked") {
		t.Errorf("line %q missing dir field", lines[0])
	}
}

func TestFileLoggerLevelFilter(t *testing.T) {
	logger, path := newTestLogger(t, FormatText, WarnLevel)

	ctx := context.Background()
	logger.Debug(ctx, "debug message", nil)
	logger.Info(ctx, "info message", nil)
	logger.Error(ctx, "error message", os.ErrPermission, nil)
	logger.Close()

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("log has %d lines, want 1 (only error)", len(lines))
	}
	if !strings.Contains(lines[0], "error message") {
		t.Errorf("line %q is not the error entry", lines[0])
	}
	if !strings.Contains(lines[0], `error="permission denied"`) {
		t.Errorf("line %q missing error cause", lines[0])
	}
}

func TestFileLoggerWithFields(t *testing.T) {
	logger, path := newTestLogger(t, FormatJSON, DebugLevel)

	child := logger.WithFields(Fields{"run_id": "abc123"})
	child.Info(context.Background(), "scoped entry", nil)
	logger.Close()

	lines := readLines(t, path)
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["run_id"] != "abc123" {
		t.Errorf("run_id = %v, want abc123", entry["run_id"])
	}
}

func TestFileLoggerRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotate.log")
	logger, err := NewFileLogger(FileLoggerConfig{
		Path:       path,
		Format:     FormatText,
		Level:      DebugLevel,
		MaxSize:    64,
		MaxBackups: 2,
	})
	if err != nil {
		t.Fatalf("NewFileLogger() = %v", err)
	}

	ctx := context.Background()
	for i := 0; i < 20; i++ {
		logger.Info(ctx, "a reasonably long log message to force rotation", nil)
	}
	logger.Close()

	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("expected backup file %s.1 to exist: %v", path, err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"nonsense", InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
