package platform

import (
	"path/filepath"
	"runtime"
	"strings"
)

// NormalizePath normalizes a path for the current platform
func NormalizePath(path string) string {
	normalized := filepath.Clean(path)

	// On Windows, ensure UNC paths are preserved
	if runtime.GOOS == "windows" {
		if strings.HasPrefix(path, "\\\\") && !strings.HasPrefix(normalized, "\\\\") {
			normalized = "\\\\" + normalized
		}
	}

	return normalized
}

// Ext returns the file extension, including the leading dot
func Ext(path string) string {
	return filepath.Ext(path)
}

// HasExtension reports whether the path has an extension component
func HasExtension(path string) bool {
	return filepath.Ext(path) != ""
}

// IsAbsolute checks if a path is absolute
func IsAbsolute(path string) bool {
	return filepath.IsAbs(path)
}
