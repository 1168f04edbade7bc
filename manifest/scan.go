package manifest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/exp/slices"
)

// Scan walks root and returns every file matching one of the given naming
// conventions, sorted by path so repeated runs give identical output.
// Only filenames are inspected; file contents are never opened.
func Scan(root string, patterns []ReadPattern) ([]FastqFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot read input directory %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path %q is not a directory", root)
	}

	var files []FastqFile
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if f, ok := Match(path, patterns); ok {
			files = append(files, f)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(files, func(a, b FastqFile) int {
		switch {
		case a.Path < b.Path:
			return -1
		case a.Path > b.Path:
			return 1
		default:
			return 0
		}
	})
	return files, nil
}
