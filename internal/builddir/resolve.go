package builddir

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsfw/fsfwhelper/internal/target"
	"github.com/fsfw/fsfwhelper/x/cmake"
	"github.com/gookit/color"
	"github.com/qiniu/x/log"
)

// Resolver decides which single build directory a run operates on.
type Resolver struct {
	Root     string
	Locate   func(root string) ([]string, error)
	Scaffold func(ctx context.Context, dir string, req target.Request) error
	Remove   func(path string) error
	Picker   Picker
	Out      io.Writer
}

// NewResolver returns a Resolver for the project at root that scaffolds
// through r and asks questions on in/out.
func NewResolver(root string, r cmake.Runner, in io.Reader, out io.Writer) *Resolver {
	s := &Scaffolder{Root: root, Runner: r}
	return &Resolver{
		Root:     root,
		Locate:   Locate,
		Scaffold: s.Scaffold,
		Remove:   os.RemoveAll,
		Picker:   NewPrompter(in, out),
		Out:      out,
	}
}

// Resolve returns the build directory to use for req.
//
// With req.Create the conventional directory is recreated from scratch.
// Otherwise the root is scanned: no match scaffolds the conventional
// directory, one match is used as is and several are offered to the Picker.
func (r *Resolver) Resolve(ctx context.Context, req target.Request) (string, error) {
	conventional := filepath.Join(r.Root, req.Kind.DirName())
	if req.Create {
		if err := r.recreate(ctx, conventional, req); err != nil {
			return "", err
		}
		return conventional, nil
	}

	candidates, err := r.Locate(r.Root)
	if err != nil {
		return "", fmt.Errorf("scan %s for build directories: %w", r.Root, err)
	}
	log.Debugf("build directories under %s: %v", r.Root, candidates)

	switch len(candidates) {
	case 0:
		fmt.Fprintln(r.Out, color.Warn.Sprintf(
			"No valid CMake %s build directory found. Trying to set up %s build system", req.Kind, req.Kind))
		if err := r.recreate(ctx, conventional, req); err != nil {
			return "", err
		}
		return conventional, nil
	case 1:
		return candidates[0], nil
	}
	fmt.Fprintln(r.Out, "Multiple build directories found!")
	dir, err := r.Picker.Pick(candidates)
	if err != nil {
		return "", err
	}
	log.Debugf("picked %s", dir)
	return dir, nil
}

func (r *Resolver) recreate(ctx context.Context, dir string, req target.Request) error {
	if _, err := os.Lstat(dir); err == nil {
		log.Debugf("removing %s", dir)
		if err := r.Remove(dir); err != nil {
			return fmt.Errorf("remove %s: %w", dir, err)
		}
	}
	return r.Scaffold(ctx, dir, req)
}
