// Package builddir finds, picks or scaffolds the CMake build directory a
// helper operates on.
package builddir

import (
	"os"
	"path/filepath"

	"github.com/fsfw/fsfwhelper/internal/target"
)

// Locate returns the immediate subdirectories of root that hold a CMake
// cache, in directory listing order. Paths are absolute.
func Locate(root string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var found []string
	for _, e := range entries {
		dir := filepath.Join(root, e.Name())
		if !isDir(e, dir) {
			continue
		}
		if fi, err := os.Stat(filepath.Join(dir, target.CacheFile)); err == nil && fi.Mode().IsRegular() {
			found = append(found, dir)
		}
	}
	return found, nil
}

func isDir(e os.DirEntry, path string) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
