// Package app composes project root discovery, build directory resolution
// and dispatch into the run both command-line helpers share.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/fsfw/fsfwhelper/internal/builddir"
	"github.com/fsfw/fsfwhelper/internal/dispatch"
	"github.com/fsfw/fsfwhelper/internal/env"
	"github.com/fsfw/fsfwhelper/internal/runner"
	"github.com/fsfw/fsfwhelper/internal/target"
	"github.com/qiniu/x/log"
)

// App carries the capabilities of one helper invocation.
type App struct {
	Root       string
	Resolver   *builddir.Resolver
	Dispatcher *dispatch.Dispatcher
}

// New wires an App for the project containing cwd, talking to the user
// over in and out and spawning tools through r.
func New(cwd string, r runner.Runner, in io.Reader, out io.Writer) (*App, error) {
	root, err := env.ProjectRoot(cwd)
	if err != nil {
		return nil, err
	}
	log.Debugf("project root %s", root)
	return &App{
		Root:       root,
		Resolver:   builddir.NewResolver(root, r, in, out),
		Dispatcher: dispatch.New(r, out),
	}, nil
}

// NewDefault wires an App for the current directory and standard streams.
func NewDefault() (*App, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return New(cwd, runner.New(), os.Stdin, os.Stdout)
}

// Run validates req, resolves the build directory and performs req on it.
func (a *App) Run(ctx context.Context, req target.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	dir, err := a.Resolver.Resolve(ctx, req)
	if err != nil {
		return err
	}
	log.Infof("using build directory %s", dir)
	return a.Dispatcher.Run(ctx, dir, req)
}

// ExitCode maps a run error to the process exit status. A failing external
// tool passes its own status through; everything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
