// Package runner spawns the external tools the helpers drive: cmake,
// valgrind and the platform's browser handler.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/qiniu/x/log"
)

// Runner runs external commands. dir is the child's working directory;
// an empty dir inherits the caller's.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
	Output(ctx context.Context, dir, name string, args ...string) ([]byte, error)
	LookPath(name string) (string, error)
}

// Exec runs commands as child processes wired to the given streams.
type Exec struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var _ Runner = (*Exec)(nil)

// New returns an Exec attached to the process's standard streams.
func New() *Exec {
	return &Exec{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run echoes the command line, then runs it to completion. A non-zero exit
// status is returned as an error wrapping *exec.ExitError.
func (e *Exec) Run(ctx context.Context, dir, name string, args ...string) error {
	fmt.Fprintln(e.Stdout, color.Info.Sprintf("Executing command: %s", CommandLine(name, args...)))
	log.Debugf("run %s in %q", name, dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Output runs the command and returns its standard output.
func (e *Exec) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	log.Debugf("output %s in %q", CommandLine(name, args...), dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stderr = e.Stderr
	out, err := cmd.Output()
	if err != nil {
		return out, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// LookPath searches PATH for an executable named name.
func (e *Exec) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// CommandLine renders name and args the way a shell user would type them.
func CommandLine(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	for _, a := range append([]string{name}, args...) {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = `"` + strings.ReplaceAll(a, `"`, `\"`) + `"`
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
