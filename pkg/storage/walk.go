package storage

import (
	"context"
	"os"
	"path/filepath"
)

// DirErrorFunc is invoked for each directory that cannot be enumerated.
// The directory's subtree is skipped; enumeration of siblings continues.
type DirErrorFunc func(dir string, err error)

// FileIterator lazily produces the absolute paths of all regular files
// under a root, breadth-first. It is single-use and not restartable.
type FileIterator struct {
	ctx     context.Context
	dirs    []string
	files   []string
	onError DirErrorFunc
}

// Enumerate returns a breadth-first iterator over all regular files under
// the backend root. Directories that fail to enumerate are reported through
// onError and skipped. Symbolic links are not followed.
func (l *Local) Enumerate(ctx context.Context, onError DirErrorFunc) *FileIterator {
	if onError == nil {
		onError = func(string, error) {}
	}
	return &FileIterator{
		ctx:     ctx,
		dirs:    []string{l.rootPath},
		onError: onError,
	}
}

// Next returns the next file path, or ok=false when the traversal is
// exhausted or the context is cancelled.
func (it *FileIterator) Next() (path string, ok bool) {
	for len(it.files) == 0 {
		if it.ctx.Err() != nil {
			return "", false
		}
		if len(it.dirs) == 0 {
			return "", false
		}

		dir := it.dirs[0]
		it.dirs = it.dirs[1:]

		entries, err := os.ReadDir(dir)
		if err != nil {
			it.onError(dir, err)
			continue
		}

		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())
			switch {
			case entry.IsDir():
				it.dirs = append(it.dirs, full)
			case entry.Type().IsRegular():
				it.files = append(it.files, full)
			}
		}
	}

	path = it.files[0]
	it.files = it.files[1:]
	return path, true
}
