package builddir

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fsfw/fsfwhelper/internal/target"
	"github.com/fsfw/fsfwhelper/x/cmake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCMake struct {
	version string
	runErr  error
	runs    [][]string
	dirs    []string
}

func (f *fakeCMake) Run(ctx context.Context, dir, name string, args ...string) error {
	f.dirs = append(f.dirs, dir)
	f.runs = append(f.runs, append([]string{name}, args...))
	return f.runErr
}

func (f *fakeCMake) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	return []byte("cmake version " + f.version + "\n"), nil
}

func TestScaffoldTests(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, target.TestsDirName)
	r := &fakeCMake{version: "3.22.1"}
	s := &Scaffolder{Root: root, Runner: r}

	err := s.Scaffold(context.Background(), dir, target.Request{Kind: target.Tests, Generator: "Unix Makefiles"})
	require.NoError(t, err)

	assert.DirExists(t, dir)
	require.Len(t, r.runs, 1)
	assert.Equal(t, dir, r.dirs[0])
	assert.Equal(t, []string{
		"cmake", "-S", root, "-B", dir, "-G", "Unix Makefiles",
		"-DFSFW_BUILD_TESTS:BOOL=ON", "-DFSFW_OSAL:STRING=host",
	}, r.runs[0])
}

func TestScaffoldFailureLeavesDirectory(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, target.DocsDirName)
	boom := errors.New("configure failed")
	s := &Scaffolder{Root: root, Runner: &fakeCMake{version: "3.22.1", runErr: boom}}

	err := s.Scaffold(context.Background(), dir, target.Request{Kind: target.Docs})
	assert.ErrorIs(t, err, boom)
	assert.DirExists(t, dir)
}

func TestScaffoldOldCMake(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, target.TestsDirName)
	r := &fakeCMake{version: "3.10.2"}
	s := &Scaffolder{Root: root, Runner: r}

	err := s.Scaffold(context.Background(), dir, target.Request{Kind: target.Tests})
	assert.Error(t, err)
	assert.Empty(t, r.runs)
	assert.NoDirExists(t, dir)
}

func TestScaffoldExistingDirectory(t *testing.T) {
	root := t.TempDir()
	dir := mkBuildDir(t, root, target.TestsDirName, false)
	r := &fakeCMake{version: "3.22.1"}
	s := &Scaffolder{Root: root, Runner: r}

	err := s.Scaffold(context.Background(), dir, target.Request{Kind: target.Tests})
	assert.ErrorIs(t, err, os.ErrExist)
	assert.Empty(t, r.runs)
}

func TestConfigureOptions(t *testing.T) {
	tests := []struct {
		name string
		req  target.Request
		want string
	}{
		{
			"tests default generator",
			target.Request{Kind: target.Tests},
			"-S /src -B /b -G Ninja -DFSFW_BUILD_TESTS:BOOL=ON -DFSFW_OSAL:STRING=host",
		},
		{
			"tests windows",
			target.Request{Kind: target.Tests, Generator: "MinGW Makefiles", Windows: true},
			"-S /src -B /b -G MinGW Makefiles -DFSFW_BUILD_TESTS:BOOL=ON -DFSFW_OSAL:STRING=host -DGCOVR_PATH:STRING=py -m gcovr",
		},
		{
			"docs ignore generator",
			target.Request{Kind: target.Docs, Generator: "Ninja", Windows: true},
			"-S /src -B /b -DFSFW_BUILD_DOCS:BOOL=ON -DFSFW_OSAL:STRING=host",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cmake.New(nil, "/src", "/b")
			Configure(c, tt.req)
			assert.Equal(t, tt.want, strings.Join(c.ConfigureArgs(), " "))
		})
	}
}
