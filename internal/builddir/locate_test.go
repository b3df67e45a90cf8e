package builddir

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/fsfw/fsfwhelper/internal/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mkBuildDir creates root/name, with a CMake cache when configured is set.
func mkBuildDir(t *testing.T, root, name string, configured bool) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	if configured {
		require.NoError(t, os.WriteFile(filepath.Join(dir, target.CacheFile), []byte("# cache\n"), 0o644))
	}
	return dir
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name string
		dirs map[string]bool
		want []string
	}{
		{"empty", nil, nil},
		{"none configured", map[string]bool{"src": false, "docs": false}, nil},
		{"one", map[string]bool{"A": false, "B": true}, []string{"B"}},
		{"many", map[string]bool{"A": true, "B": true, "C": true, "src": false}, []string{"A", "B", "C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for name, configured := range tt.dirs {
				mkBuildDir(t, root, name, configured)
			}
			var want []string
			for _, name := range tt.want {
				want = append(want, filepath.Join(root, name))
			}

			got, err := Locate(root)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLocateIgnoresFilesAndNestedCaches(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, target.CacheFile), nil, 0o644))
	mkBuildDir(t, root, filepath.Join("a", "nested"), true)
	dir := mkBuildDir(t, root, "b", false)
	require.NoError(t, os.Mkdir(filepath.Join(dir, target.CacheFile), 0o755))

	got, err := Locate(root)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocateFollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	outside := mkBuildDir(t, t.TempDir(), "out-of-tree", true)
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "linked")))

	got, err := Locate(root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "linked")}, got)
}

func TestLocateMissingRoot(t *testing.T) {
	_, err := Locate(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
