package env

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/qiniu/x/log"
)

// RootMarker is the file that identifies the top of the source tree.
const RootMarker = "README.md"

// ProjectRoot returns the absolute project root for a helper started in cwd.
// The helpers may be run from the root itself or from a direct child such as
// scripts/, so cwd is tried first, then its parent. Failing both, the
// enclosing git worktree is used when it carries the marker; otherwise the
// parent is returned as is.
func ProjectRoot(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", err
	}
	if isFile(filepath.Join(dir, RootMarker)) {
		return dir, nil
	}
	parent := filepath.Dir(dir)
	if isFile(filepath.Join(parent, RootMarker)) {
		return parent, nil
	}
	if root, err := worktreeRoot(dir); err == nil && isFile(filepath.Join(root, RootMarker)) {
		return root, nil
	}
	log.Debugf("no %s near %s, using %s", RootMarker, dir, parent)
	return parent, nil
}

func worktreeRoot(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", err
	}
	return wt.Filesystem.Root(), nil
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
