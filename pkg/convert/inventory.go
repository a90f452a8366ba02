package convert

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/sbogaert/bomsweep/pkg/logging"
	"github.com/sbogaert/bomsweep/pkg/storage"
)

// ListExtensions walks the tree and returns the deduplicated set of file
// extensions present, in encounter order. Dedup is case-insensitive with the
// most-recently-seen casing winning. Extensionless files contribute the
// empty string. When includeExcluded is false, extensions present in the
// exclusion set are removed from the result.
func ListExtensions(
	ctx context.Context,
	backend *storage.Local,
	exclusions []string,
	includeExcluded bool,
	logger logging.Logger,
) []string {
	var extensions []string

	it := backend.Enumerate(ctx, func(dir string, err error) {
		logger.Warn(ctx, "Skipping unreadable directory", logging.Fields{
			"dir":   dir,
			"error": err.Error(),
		})
	})

	for path, ok := it.Next(); ok; path, ok = it.Next() {
		ext := filepath.Ext(path)

		// Drop any prior casing of the same extension so the latest wins
		for i, prior := range extensions {
			if strings.EqualFold(prior, ext) {
				extensions = append(extensions[:i], extensions[i+1:]...)
				break
			}
		}
		extensions = append(extensions, ext)
	}

	if includeExcluded {
		return extensions
	}

	filtered := extensions[:0]
	for _, ext := range extensions {
		if !isExcluded(ext, exclusions) {
			filtered = append(filtered, ext)
		}
	}
	return filtered
}

// isExcluded tests case-insensitive membership in the exclusion set
func isExcluded(ext string, exclusions []string) bool {
	for _, entry := range exclusions {
		if strings.EqualFold(entry, ext) {
			return true
		}
	}
	return false
}
