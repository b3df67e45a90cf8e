// Package dispatch performs the requested operations on a resolved build
// directory: build, open the generated report and run valgrind.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsfw/fsfwhelper/internal/runner"
	"github.com/fsfw/fsfwhelper/internal/target"
	"github.com/fsfw/fsfwhelper/x/cmake"
	"github.com/gookit/color"
	"github.com/qiniu/x/log"
)

var (
	// ErrMissingTool is returned when a required executable is not on PATH.
	ErrMissingTool = errors.New("required tool is not installed")
	// ErrMissingArtifact is returned when a report is still absent after
	// one rebuild.
	ErrMissingArtifact = errors.New("expected build artifact is missing")
)

const valgrind = "valgrind"

// Dispatcher runs operations through injected capabilities so it can be
// exercised without spawning processes.
type Dispatcher struct {
	Runner runner.Runner
	Open   func(path string) error
	Exists func(path string) bool
	Out    io.Writer
}

// New returns a Dispatcher backed by r that opens reports in the default
// browser.
func New(r runner.Runner, out io.Writer) *Dispatcher {
	return &Dispatcher{
		Runner: r,
		Open:   runner.OpenInBrowser,
		Exists: fileExists,
		Out:    out,
	}
}

// Run performs, in order, the build, open and valgrind steps requested by
// req inside dir. The first failing step ends the run.
func (d *Dispatcher) Run(ctx context.Context, dir string, req target.Request) error {
	log.Debugf("dispatch %+v in %s", req, dir)
	if req.Build {
		if err := d.build(ctx, dir, req.Kind); err != nil {
			return err
		}
	}
	if req.Open {
		if err := d.open(ctx, dir, req.Kind); err != nil {
			return err
		}
	}
	if req.Valgrind {
		if err := d.valgrind(ctx, dir); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) build(ctx context.Context, dir string, kind target.Kind) error {
	return cmake.New(d.Runner, "", dir).Build(ctx, kind.BuildArgs()...)
}

// open hands the kind's report to the browser, rebuilding once if it is
// not there yet.
func (d *Dispatcher) open(ctx context.Context, dir string, kind target.Kind) error {
	page := filepath.Join(dir, kind.Artifact())
	if !d.Exists(page) {
		log.Debugf("%s missing, rebuilding", page)
		if err := d.build(ctx, dir, kind); err != nil {
			return err
		}
		if !d.Exists(page) {
			fmt.Fprintln(d.Out, color.Error.Sprintf(
				"No %s detected at %s. Try to build it first with the -b argument", describe(kind), page))
			return fmt.Errorf("%w: %s", ErrMissingArtifact, page)
		}
	}
	return d.Open(page)
}

func (d *Dispatcher) valgrind(ctx context.Context, dir string) error {
	if _, err := d.Runner.LookPath(valgrind); err != nil {
		fmt.Fprintln(d.Out, color.Error.Sprint("Please install valgrind first"))
		return fmt.Errorf("%w: %s", ErrMissingTool, valgrind)
	}
	return d.Runner.Run(ctx, dir, valgrind, "--leak-check=full", "./"+target.TestBinary)
}

func describe(kind target.Kind) string {
	if kind == target.Docs {
		return "Sphinx documentation"
	}
	return "coverage report"
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
