package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sbogaert/bomsweep/internal/platform"
)

// Local is a filesystem-based storage backend rooted at a directory
type Local struct {
	rootPath string
}

// NewLocal creates a new local filesystem backend
func NewLocal(rootPath string) (*Local, error) {
	absPath := platform.NormalizePath(rootPath)
	if !platform.IsAbsolute(absPath) {
		var err error
		absPath, err = filepath.Abs(absPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path: %w", err)
		}
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", absPath)
	}

	return &Local{rootPath: absPath}, nil
}

// Root returns the absolute root path of the backend
func (l *Local) Root() string {
	return l.rootPath
}

// ReadFile reads the full content of a file
func (l *Local) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// WriteFile overwrites a file with the given content, preserving its mode
func (l *Local) WriteFile(ctx context.Context, path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := l.Stat(ctx, path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Stat returns file metadata
func (l *Local) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	return info, nil
}

// Close releases resources (no-op for local filesystem)
func (l *Local) Close() error {
	return nil
}
