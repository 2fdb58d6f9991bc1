package filesystem_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ccsync/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlob_FilesOnlySorted(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, afero.WriteFile(fsys, "/p/b.py", []byte("b"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/p/a.py", []byte("a"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/p/notes.txt", []byte("n"), 0644))
	require.NoError(t, fsys.MkdirAll("/p/dir.py", 0755))

	got, err := filesystem.Glob(fsys, filepath.Join("/p", "*.py"))
	require.NoError(t, err)

	assert.Equal(t, []string{"/p/a.py", "/p/b.py"}, got)
}

func TestGlob_SkipsHiddenFiles(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, afero.WriteFile(fsys, "/p/api.py", []byte("a"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/p/.scratch.py", []byte("s"), 0644))

	got, err := filesystem.Glob(fsys, filepath.Join("/p", "*.py"))
	require.NoError(t, err)
	assert.Equal(t, []string{"/p/api.py"}, got)

	got, err = filesystem.Glob(fsys, filepath.Join("/p", ".*.py"))
	require.NoError(t, err)
	assert.Equal(t, []string{"/p/.scratch.py"}, got)
}

func TestGlob_BadPattern(t *testing.T) {
	_, err := filesystem.Glob(filesystem.NewMemory(), "/p/[")
	assert.Error(t, err)
}

func TestEnsureDir_Idempotent(t *testing.T) {
	fsys := filesystem.NewMemory()

	require.NoError(t, filesystem.EnsureDir(fsys, "/a/b/c"))
	require.NoError(t, filesystem.EnsureDir(fsys, "/a/b/c"))

	assert.True(t, filesystem.IsDir(fsys, "/a/b/c"))
	assert.False(t, filesystem.IsFile(fsys, "/a/b/c"))
}

func TestWriteFile_KeepsExistingMode(t *testing.T) {
	fsys := filesystem.NewOS()
	path := filepath.Join(t.TempDir(), "run.py")
	require.NoError(t, afero.WriteFile(fsys, path, []byte("old"), 0755))

	require.NoError(t, filesystem.WriteFile(fsys, path, []byte("new")))

	info, err := fsys.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0755), info.Mode().Perm())

	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFile_NewFile(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, filesystem.EnsureDir(fsys, "/x"))

	require.NoError(t, filesystem.WriteFile(fsys, "/x/manifest.json", []byte("{}")))

	assert.True(t, filesystem.IsFile(fsys, "/x/manifest.json"))
}
