// Package walker discovers candidate source files under a directory tree.
package walker

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Extensions that may receive generated comments. The line-based detector
// only understands JavaScript/TypeScript declaration shapes, so the
// allow-list stays in lockstep with it.
var sourceExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
}

// Collect walks root recursively and returns matching files in traversal
// order. Directories named node_modules and hidden directories (leading
// dot) are skipped entirely.
func Collect(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "node_modules" || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if sourceExtensions[filepath.Ext(path)] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
