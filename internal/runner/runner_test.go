package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandLine(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"cmake", []string{"--build", "."}, "cmake --build ."},
		{"cmake", []string{"-DGCOVR_PATH:STRING=py -m gcovr"}, `cmake "-DGCOVR_PATH:STRING=py -m gcovr"`},
		{"cmake", []string{"-G", "Unix Makefiles"}, `cmake -G "Unix Makefiles"`},
		{"valgrind", []string{""}, `valgrind ""`},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, CommandLine(tt.name, tt.args...))
		})
	}
}

func newTestExec() (*Exec, *bytes.Buffer) {
	var out bytes.Buffer
	return &Exec{Stdin: &bytes.Buffer{}, Stdout: &out, Stderr: &out}, &out
}

func TestExecRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	e, out := newTestExec()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CMakeCache.txt"), nil, 0o644))

	require.NoError(t, e.Run(context.Background(), dir, "ls"))
	assert.Contains(t, out.String(), "Executing command: ls")
	assert.Contains(t, out.String(), "CMakeCache.txt")
}

func TestExecRunExitStatus(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	e, _ := newTestExec()

	err := e.Run(context.Background(), "", "sh", "-c", "exit 3")
	require.Error(t, err)
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestExecOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	e, out := newTestExec()

	got, err := e.Output(context.Background(), "", "sh", "-c", "echo cmake version 3.22.1")
	require.NoError(t, err)
	assert.Equal(t, "cmake version 3.22.1\n", string(got))
	assert.NotContains(t, out.String(), "Executing command")
}

func TestExecLookPathMissing(t *testing.T) {
	e, _ := newTestExec()
	_, err := e.LookPath("fsfw-no-such-tool-on-path")
	assert.Error(t, err)
}
